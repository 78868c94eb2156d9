package shared

import (
	"encoding/json"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// AuthState is the client's view of the current login, derived from the
// locally stored token and user.
type AuthState struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

type Document struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	UploaderID    string    `json:"uploader_id"`
	FolderID      *string   `json:"folder_id"`
	IsPrivate     bool      `json:"is_private"`
	FileSizeBytes int64     `json:"file_size_bytes"`
	DownloadCount int       `json:"download_count"`
	Tags          *string   `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Folder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	OwnerID     string    `json:"owner_id"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Response is the envelope wrapping every backend reply.
type Response[T any] struct {
	Success bool           `json:"success"`
	Data    *T             `json:"data,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

type ResponseError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Envelope is a Response whose payload is left undecoded, returned by the
// operations that hand the whole reply back to the caller.
type Envelope = Response[json.RawMessage]

type Register struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyOTP struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type RequestOTP struct {
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ChangeVisibility struct {
	IsPrivate bool `json:"isPrivate"`
}

// MoveDocument moves a document into FolderID, or out of any folder when
// FolderID is nil. The field is always serialized so that null is sent.
type MoveDocument struct {
	FolderID *string `json:"folderId"`
}

type NewFolder struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}

type ModifyFolder struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

type DownloadResponse struct {
	URL string `json:"url"`
}
