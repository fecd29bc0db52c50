package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// VerifyUserToken validates a Firebase ID token and returns its claims.
func VerifyUserToken(token string) (*auth.Token, error) {
	client, err := GetAuthClient()
	if err != nil {
		return nil, err
	}

	verifiedToken, err := client.VerifyIDToken(context.Background(), token)
	if err != nil {
		return nil, fmt.Errorf("verifying ID token: %w", err)
	}
	return verifiedToken, nil
}

// GetUserByUID looks up a Firebase user record.
func GetUserByUID(uid string) (*auth.UserRecord, error) {
	client, err := GetAuthClient()
	if err != nil {
		return nil, err
	}

	user, err := client.GetUser(context.Background(), uid)
	if err != nil {
		return nil, fmt.Errorf("looking up user %s: %w", uid, err)
	}
	return user, nil
}

// GetUserByEmail looks up a Firebase user record by email.
func GetUserByEmail(email string) (*auth.UserRecord, error) {
	client, err := GetAuthClient()
	if err != nil {
		return nil, err
	}

	user, err := client.GetUserByEmail(context.Background(), email)
	if err != nil {
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}
	return user, nil
}

// TokenEmail pulls the verified email claim out of an ID token. Empty when
// the identity has no email claim.
func TokenEmail(token *auth.Token) string {
	email, _ := token.Claims["email"].(string)
	return email
}

// TokenDisplayName pulls the display name claim out of an ID token.
func TokenDisplayName(token *auth.Token) string {
	name, _ := token.Claims["name"].(string)
	return name
}
