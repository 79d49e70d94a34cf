package handler

// Response messages.
const (
	msgSignUpSucceeded = "Sign-up completed."
	msgSignInSucceeded = "Sign-in completed."
	msgReadMeSucceeded = "Profile retrieved."
	msgHealthy         = "Service is healthy."

	msgResumeCreated     = "Resume created."
	msgResumeListed      = "Resumes retrieved."
	msgResumeRetrieved   = "Resume retrieved."
	msgResumeUpdated     = "Resume updated."
	msgResumeDeleted     = "Resume deleted."
	msgResumeNotFound    = "Resume does not exist."
	msgNothingToUpdate   = "Provide at least one field to update."
	msgInvalidBody       = "Invalid request body."
	msgEmailTaken        = "This email is already registered."
	msgInvalidCredential = "Authentication information is incorrect."
	msgAuthRequired      = "Authentication information is missing."
	msgUnsupportedAuth   = "Unsupported authentication scheme."
	msgInvalidAuth       = "Authentication information is invalid."
	msgNotFound          = "Not found."
	msgInternal          = "An unexpected error occurred. Please try again."
)
