package controllers

// Session keys shared between the auth handlers and the user context
// middleware.
const (
	AUTH_KEY   string = "authenticated"
	USER_ID    string = "user_id"
	USER_NAME  string = "username"
	USER_EMAIL string = "user_email"
)
