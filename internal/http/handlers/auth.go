package handlers

import (
	"net/http"
	"time"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret overrides the signing key; called once from the router.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

// JWTSecret exposes the active key for the auth middleware.
func JWTSecret() []byte { return jwtSecret }

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload tidak valid"})
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByEmail(utils.NormalizeEmail(req.Email))
	if err != nil {
		if domain.IsNotFound(err) || domain.IsValidation(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email atau password salah"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal query user: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email atau password salah"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal membuat token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   tokenString,
		"user":    user.ToPublic(),
	})
}

type registerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Whatsapp     string `json:"whatsapp"`
	Address      string `json:"address"`
	AgreeToTerms bool   `json:"agreeToTerms"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload tidak valid"})
		return
	}
	if utils.TrimOrEmpty(req.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password wajib diisi"})
		return
	}

	repo := repositories.UserRepository{}
	email := utils.NormalizeEmail(req.Email)

	taken, err := repo.EmailTaken(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal cek user: " + err.Error()})
		return
	}
	if taken {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email sudah terdaftar"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal meng-hash password"})
		return
	}

	user := newUserFromRegister(req, email, string(hash))
	if err := repo.Create(&user); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registrasi berhasil",
		"user":    user.ToPublic(),
	})
}

func newUserFromRegister(req registerRequest, email, hash string) (u models.User) {
	u.Name = utils.NormalizeSpace(req.Name)
	u.Email = email
	u.PasswordHash = hash
	u.Whatsapp = utils.TrimOrEmpty(req.Whatsapp)
	u.Address = utils.TrimOrEmpty(req.Address)
	u.AgreeToTerms = req.AgreeToTerms
	u.Role = "user"
	u.Status = "active"
	return u
}

type recoveryRequest struct {
	Email string `json:"email"`
}

// POST /api/auth/recovery
//
// Issues a reset token. Delivery is out of scope (the app screen only shows
// a confirmation), so the token is returned in the response for now.
// TODO: drop the token from the response once email delivery lands.
func Recovery(c *gin.Context) {
	var req recoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload tidak valid"})
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByEmail(utils.NormalizeEmail(req.Email))
	if err != nil {
		// jangan bocorkan email mana yang terdaftar
		if domain.IsNotFound(err) || domain.IsValidation(err) {
			c.JSON(http.StatusOK, gin.H{"message": "Jika email terdaftar, instruksi reset sudah dikirim"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal query user: " + err.Error()})
		return
	}

	token := uuid.NewString()
	if err := repo.SetResetToken(user.ID, token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menyimpan token: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Jika email terdaftar, instruksi reset sudah dikirim",
		"reset_token": token,
	})
}
