package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"gingallery/database"
	"gingallery/models"
	"gingallery/response"
	"gingallery/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// RegisterUser runs after the CheckUserFree middleware, so by the time it
// executes the username is free (barring a concurrent registration, which
// the unique index turns into a duplicate-key error below).
func (ct *Controller) RegisterUser(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindBodyWith(&creds, binding.JSON); err != nil {
		response.InvalidData(c, "controller.RegisterUser", "Invalid Request Body")
		return
	}

	if msgs := validateCredentials(creds); len(msgs) > 0 {
		response.InvalidData(c, "controller.RegisterUser", strings.Join(msgs, "; "))
		return
	}

	hashed, err := utils.HashPass(creds.Password)
	if err != nil {
		response.InternalServerError(c, "controller.RegisterUser", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := models.User{
		ID:       bson.NewObjectID(),
		Username: creds.Username,
		Password: hashed,
	}

	if _, err := ct.collection(database.UsersCollection).InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			response.InvalidData(c, "controller.RegisterUser", "User Exists")
			return
		}
		response.InternalServerError(c, "controller.RegisterUser", err)
		return
	}

	c.IndentedJSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user.Username,
	})
}

var validate = validator.New()

// validateCredentials returns one message per violated registration rule.
func validateCredentials(creds models.Credentials) []string {
	var msgs []string

	if err := validate.Struct(creds); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []string{"Invalid Request Body"}
		}
		for _, fe := range verrs {
			switch fe.Field() {
			case "Username":
				if fe.Tag() == "required" {
					msgs = append(msgs, "Please provide username")
				} else {
					msgs = append(msgs, "Username should be in length range (4, 12)")
				}
			case "Password":
				if fe.Tag() == "required" {
					msgs = append(msgs, "Please provide password")
				} else {
					msgs = append(msgs, "Password should be in length range (8, 32)")
				}
			}
		}
	}

	if creds.Password != "" && !hasMixedCase(creds.Password) {
		msgs = append(msgs, "Password should contain small and capital letters")
	}
	return msgs
}

func hasMixedCase(s string) bool {
	var lower, upper bool
	for _, r := range s {
		if unicode.IsLower(r) {
			lower = true
		}
		if unicode.IsUpper(r) {
			upper = true
		}
	}
	return lower && upper
}

func (ct *Controller) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		response.InvalidData(c, "controller.Login", "Invalid Request Body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user := &models.User{}
	err := ct.collection(database.UsersCollection).
		FindOne(ctx, bson.M{"username": creds.Username}).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username and/or password"})
		return
	}
	if err != nil {
		response.InternalServerError(c, "controller.Login", err)
		return
	}

	if err := utils.ComparePass(creds.Password, user.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username and/or password"})
		return
	}

	token, err := utils.SignedToken(user.ID.Hex(), ct.cfg.JWTSecret, ct.cfg.TokenExpiry)
	if err != nil {
		response.InternalServerError(c, "controller.Login", err)
		return
	}

	// Absolute expiry is computed here, at issuance.
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ct.cfg.TokenExpiry),
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.IndentedJSON(http.StatusOK, gin.H{
		"jwt":     token,
		"message": "Logged in successfully",
	})
}

// Logout clears the cookie only. Issued tokens stay valid until their
// natural expiry; there is no server-side revocation.
func (ct *Controller) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-1 * time.Second),
		MaxAge:   -1,
		Secure:   false,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.IndentedJSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// VerifyToken only runs when the JWT middleware let the request through.
func (ct *Controller) VerifyToken(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{"message": "Access granted"})
}
