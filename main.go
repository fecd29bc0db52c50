package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/jameshuangoutlook/arkiviatodo/database"
	"github.com/jameshuangoutlook/arkiviatodo/firebase"
	"github.com/jameshuangoutlook/arkiviatodo/handlers"
	"github.com/jameshuangoutlook/arkiviatodo/notify"
	"github.com/jameshuangoutlook/arkiviatodo/todos"
	"github.com/jameshuangoutlook/arkiviatodo/utilities"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Failed to load .env file")
	}

	utilities.InitLogger()

	db, err := database.ConnectPostgres()
	if err != nil {
		log.Fatalf("Failed to connect to the user directory database: %v", err)
	}
	defer db.Close()

	firestoreClient, err := firebase.GetFirestoreClient()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer firestoreClient.Close()

	handlers.InitDB(db)
	handlers.InitRepository(todos.NewRepository(todos.NewFirestoreStore(firestoreClient)))
	handlers.InitNotifications(notify.NewCenter(notify.DefaultTTL))

	LoadRoutes()
}
