package middleware

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/repository"
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/jwt"
	"github.com/clerk/clerk-sdk-go/v2/user"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	svix "github.com/svix/svix-webhooks/go"
)

var userClient *user.Client

// InitClerk initializes the Clerk client using the recommended pattern
func InitClerk() {
	secretKey := os.Getenv("CLERK_SECRET_KEY")
	if secretKey == "" {
		log.Printf("WARNING: CLERK_SECRET_KEY environment variable is not set. Clerk features will be disabled.")
		return
	}

	// Set global Clerk key (recommended approach)
	clerk.SetKey(secretKey)

	// Also initialize user client for API operations
	config := &clerk.ClientConfig{}
	config.Key = &secretKey
	userClient = user.NewClient(config)

	log.Printf("Clerk initialized successfully")
}

// ClerkAuthMiddleware validates Clerk JWT tokens and resolves the local user
// record for the token subject, creating it on first successful authentication.
func ClerkAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check if Clerk is initialized
		if userClient == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Clerk authentication not available"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token no proporcionado"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

		// Verify the JWT token with Clerk using proper SDK method
		claims, err := jwt.Verify(c.Request.Context(), &jwt.VerifyParams{
			Token: tokenString,
		})

		if err != nil {
			log.Printf("JWT verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		// Extract the identity provider subject from claims
		subjectID := claims.Subject
		if subjectID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido: no se pudo extraer el ID del usuario"})
			c.Abort()
			return
		}

		localUser, err := resolveUserForSubject(c, subjectID)
		if err != nil {
			log.Printf("Could not resolve user for subject %s: %v", subjectID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al resolver el usuario"})
			c.Abort()
			return
		}

		c.Set("userId", localUser.ID)
		c.Set("clerkClaims", claims)
		c.Next()
	}
}

// resolveUserForSubject looks up the user by the token subject and creates the
// record on first successful authentication.
func resolveUserForSubject(c *gin.Context, subjectID string) (*models.User, error) {
	localUser, err := userRepo.GetUserBySubjectId(subjectID)
	if err == nil {
		return localUser, nil
	}
	if err != repository.ErrUserNotFound {
		return nil, err
	}

	newUser := &models.User{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		CreatedAt: time.Now(),
	}

	// Enrich with profile data from Clerk when available
	clerkUser, err := userClient.Get(c.Request.Context(), subjectID)
	if err == nil {
		if len(clerkUser.EmailAddresses) > 0 {
			newUser.Email = clerkUser.EmailAddresses[0].EmailAddress
		}
		var first, last string
		if clerkUser.FirstName != nil {
			first = *clerkUser.FirstName
		}
		if clerkUser.LastName != nil {
			last = *clerkUser.LastName
		}
		newUser.Name = strings.TrimSpace(first + " " + last)
	}
	if newUser.Name == "" && newUser.Email != "" {
		newUser.Name = strings.Split(newUser.Email, "@")[0]
	}

	if err := userRepo.CreateUser(newUser); err != nil {
		return nil, err
	}

	log.Printf("User created on first authentication: %s (subject %s)", newUser.ID, subjectID)
	return newUser, nil
}

// ClerkWebhookHandler handles Clerk webhooks for user events using Svix
func ClerkWebhookHandler(c *gin.Context) {
	// Get the webhook signing secret from environment
	webhookSecret := os.Getenv("CLERK_WEBHOOK_SECRET")
	if webhookSecret == "" {
		log.Printf("ERROR: CLERK_WEBHOOK_SECRET environment variable is not set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	// Read the raw body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("ERROR: reading request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read request body"})
		return
	}

	// Initialize Svix webhook with secret
	wh, err := svix.NewWebhook(webhookSecret)
	if err != nil {
		log.Printf("ERROR: creating Svix webhook: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize webhook verification"})
		return
	}

	// Verify the webhook using Svix
	if err := wh.Verify(body, c.Request.Header); err != nil {
		log.Printf("ERROR: Svix webhook verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook signature"})
		return
	}

	// Parse the webhook payload from the body we already read
	var webhookData map[string]interface{}
	if err := json.Unmarshal(body, &webhookData); err != nil {
		log.Printf("ERROR: parsing JSON payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload"})
		return
	}

	// Extract the event type
	eventType, ok := webhookData["type"].(string)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing event type"})
		return
	}

	log.Printf("Processing webhook event: %s", eventType)

	// Handle different event types
	switch eventType {
	case "user.created":
		handleUserCreated(c, webhookData)
	case "user.updated":
		handleUserUpdated(c, webhookData)
	case "user.deleted":
		handleUserDeleted(c, webhookData)
	default:
		// For other events, just return success
		log.Printf("Event type %s not handled", eventType)
		c.JSON(http.StatusOK, gin.H{"message": "Event received but not handled"})
	}
}

// extractWebhookUser pulls the subject id, primary email and full name out of
// a Clerk user.* webhook payload.
func extractWebhookUser(webhookData map[string]interface{}) (subjectID, email, name string, ok bool) {
	data, ok := webhookData["data"].(map[string]interface{})
	if !ok {
		return "", "", "", false
	}

	subjectID, ok = data["id"].(string)
	if !ok {
		return "", "", "", false
	}

	if emailAddresses, ok := data["email_addresses"].([]interface{}); ok {
		for _, emailAddr := range emailAddresses {
			if emailMap, ok := emailAddr.(map[string]interface{}); ok {
				if emailMap["email_address"] != nil {
					email = emailMap["email_address"].(string)
					break
				}
			}
		}
	}

	firstName, _ := data["first_name"].(string)
	lastName, _ := data["last_name"].(string)
	name = strings.TrimSpace(firstName + " " + lastName)
	if name == "" && email != "" {
		name = strings.Split(email, "@")[0] // Use email username as fallback
	}

	return subjectID, email, name, true
}

// handleUserCreated creates a new user in the database when they sign up through Clerk
func handleUserCreated(c *gin.Context, webhookData map[string]interface{}) {
	subjectID, email, name, ok := extractWebhookUser(webhookData)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data structure"})
		return
	}

	// The middleware may have already created the record on first login
	if _, err := userRepo.GetUserBySubjectId(subjectID); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}

	newUser := &models.User{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := userRepo.CreateUser(newUser); err != nil {
		log.Printf("ERROR: creating user in database: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	log.Printf("User created from webhook: ID=%s, Subject=%s", newUser.ID, subjectID)
	c.JSON(http.StatusOK, gin.H{"message": "User created successfully"})
}

// handleUserUpdated updates user information in the database
func handleUserUpdated(c *gin.Context, webhookData map[string]interface{}) {
	subjectID, email, name, ok := extractWebhookUser(webhookData)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data structure"})
		return
	}

	localUser, err := userRepo.GetUserBySubjectId(subjectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	localUser.Email = email
	localUser.Name = name
	if err := userRepo.UpdateUser(localUser); err != nil {
		log.Printf("Error updating user in database: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	log.Printf("User updated from webhook: ID=%s, Subject=%s", localUser.ID, subjectID)
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// handleUserDeleted removes user from the database
func handleUserDeleted(c *gin.Context, webhookData map[string]interface{}) {
	data, ok := webhookData["data"].(map[string]interface{})
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data structure"})
		return
	}

	subjectID, ok := data["id"].(string)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user ID"})
		return
	}

	localUser, err := userRepo.GetUserBySubjectId(subjectID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already removed"})
		return
	}

	if err := userRepo.DeleteUser(localUser.ID); err != nil {
		log.Printf("Error deleting user from database: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	log.Printf("User deleted from webhook: ID=%s", localUser.ID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
