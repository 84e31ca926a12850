// Copyright (c) 2025 StyleMe.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Vote choice constants
const (
	ChoiceA = "A"
	ChoiceB = "B"
)

// Request types

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePostRequest struct {
	UserEmail string `json:"userEmail"`
	ImageData string `json:"imageData"` // base64 data URL
	Question  string `json:"question"`
	OptionA   string `json:"optionA"`
	OptionB   string `json:"optionB"`
}

type DeletePostRequest struct {
	UserEmail string `json:"userEmail"`
}

type VoteRequest struct {
	UserEmail string `json:"userEmail"`
	Choice    string `json:"choice"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type HasVotedResponse struct {
	HasVoted bool  `json:"hasVoted"`
	Vote     *Vote `json:"vote"`
}

// Domain types

type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"-"` // bcrypt hash - never expose in JSON
	CreatedAt int64  `json:"created_at"`
}

type Post struct {
	ID          int64  `json:"id"`
	UserEmail   string `json:"user_email"`
	ImgFilename string `json:"img_filename"`
	Question    string `json:"question"`
	OptionA     string `json:"option_a"`
	OptionB     string `json:"option_b"`
	VotesA      int64  `json:"votes_a"`
	VotesB      int64  `json:"votes_b"`
	CreatedAt   int64  `json:"created_at"`
}

type Vote struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	UserEmail string `json:"user_email"`
	Choice    string `json:"vote_choice"`
	CreatedAt int64  `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
