// Package queue defines the notification events exchanged over the message
// broker and the publish/consume plumbing around them. Delivery is
// fire-and-forget: publishing failures are logged by callers and never
// interrupt the triggering request.
package queue

// queue names
const (
	QueueMovieCreated = "movie.created"
	QueueVerification = "user.verification"
)

// MovieCreatedEvent is published when a new movie is added to the catalog.
// The worker broadcasts it to every user with a non-empty email address.
type MovieCreatedEvent struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Language string `json:"language"`
}

// VerificationEvent is published on registration and on verification
// resend. It carries the signed verification URL for one recipient.
type VerificationEvent struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	VerifyURL string `json:"verify_url"`
}
