package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/jameshuangoutlook/arkiviatodo/handlers"
	"github.com/jameshuangoutlook/arkiviatodo/utilities"
)

func LoadRoutes() {
	r := mux.NewRouter()

	r.Use(handlers.LoggingMiddleware)

	// --- Auth ---
	r.HandleFunc("/auth/finalize-login", handlers.FinalizeLoginHandler).Methods("POST")

	// --- User directory ---
	r.HandleFunc("/user/info", handlers.AuthMiddleware(handlers.UserHandler)).Methods("GET")
	r.HandleFunc("/users/list", handlers.AuthMiddleware(handlers.GetAllUsersHandler)).Methods("GET")

	// --- Todos (own partition) ---
	r.HandleFunc("/todos/list", handlers.AuthMiddleware(handlers.ListTodosHandler)).Methods("GET")
	r.HandleFunc("/todos/create", handlers.AuthMiddleware(handlers.CreateTodoHandler)).Methods("POST")
	r.HandleFunc("/todos/{todo_id}/done", handlers.AuthMiddleware(handlers.SetDoneHandler)).Methods("PUT")
	r.HandleFunc("/todos/{todo_id}/description", handlers.AuthMiddleware(handlers.UpdateDescriptionHandler)).Methods("PUT")
	r.HandleFunc("/todos/{todo_id}/delete", handlers.AuthMiddleware(handlers.DeleteTodoHandler)).Methods("DELETE")
	r.HandleFunc("/todos/{todo_id}/share", handlers.AuthMiddleware(handlers.ShareTodoHandler)).Methods("POST")

	// --- Todos (owner-addressed, for records shared by another owner) ---
	r.HandleFunc("/todos/owner/{owner_id}/{todo_id}/done", handlers.AuthMiddleware(handlers.SetDoneHandler)).Methods("PUT")
	r.HandleFunc("/todos/owner/{owner_id}/{todo_id}/description", handlers.AuthMiddleware(handlers.UpdateDescriptionHandler)).Methods("PUT")
	r.HandleFunc("/todos/owner/{owner_id}/{todo_id}/delete", handlers.AuthMiddleware(handlers.DeleteTodoHandler)).Methods("DELETE")
	r.HandleFunc("/todos/owner/{owner_id}/{todo_id}/share", handlers.AuthMiddleware(handlers.ShareTodoHandler)).Methods("POST")

	// --- Notifications ---
	r.HandleFunc("/notifications/list", handlers.AuthMiddleware(handlers.ListNotificationsHandler)).Methods("GET")
	r.HandleFunc("/notifications/dismiss/{event_id}", handlers.AuthMiddleware(handlers.DismissNotificationHandler)).Methods("DELETE")

	// CORS
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})

	allowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if allowedOriginsEnv == "" {
		allowedOrigins = []string{"*"}
		utilities.LogInfo("CORS_ALLOWED_ORIGINS not set, allowing all origins ('*'). Set it in production.")
	} else {
		allowedOrigins = strings.Split(allowedOriginsEnv, ",")
	}
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)
	utilities.LogInfo("CORS allowed origins: %v", allowedOrigins)

	handler := gorillahandlers.CORS(headers, methods, origins)(r)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	utilities.LogInfo("Server listening on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
