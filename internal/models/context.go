package models

type ContextKey string

// ContextURL is the key the base URL of the API is stored under in the request context.
const ContextURL ContextKey = "requestURL"
