package firebase

import (
	"context"
	"fmt"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/jameshuangoutlook/arkiviatodo/utilities"
)

var (
	app     *firebase.App
	initApp sync.Once
	initErr error
)

// InitializeFirebase builds the Firebase app from the credentials file named
// by FIREBASE_CREDENTIALS_PATH. Safe to call more than once; the app is
// created a single time.
func InitializeFirebase() (*firebase.App, error) {
	initApp.Do(func() {
		credentialsPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
		if credentialsPath == "" {
			initErr = fmt.Errorf("FIREBASE_CREDENTIALS_PATH is not set")
			return
		}

		opt := option.WithCredentialsFile(credentialsPath)
		app, initErr = firebase.NewApp(context.Background(), nil, opt)
		if initErr != nil {
			utilities.LogError(initErr, "Failed to initialize Firebase")
			return
		}
		utilities.LogInfo("Firebase initialized")
	})
	return app, initErr
}

// GetAuthClient returns the Firebase Auth client.
func GetAuthClient() (*auth.Client, error) {
	app, err := InitializeFirebase()
	if err != nil {
		return nil, err
	}
	authClient, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("getting auth client: %w", err)
	}
	return authClient, nil
}

// GetFirestoreClient returns the Firestore client for the todo store.
func GetFirestoreClient() (*firestore.Client, error) {
	app, err := InitializeFirebase()
	if err != nil {
		return nil, fmt.Errorf("initializing Firebase: %w", err)
	}
	firestoreClient, err := app.Firestore(context.Background())
	if err != nil {
		return nil, fmt.Errorf("getting Firestore client: %w", err)
	}
	return firestoreClient, nil
}
