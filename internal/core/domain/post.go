package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a job referral published by an alumni or admin user.
type Post struct {
	ID             string    `json:"id" bson:"-"`
	JobRole        string    `json:"job_role" bson:"job_role"`
	CompanyName    string    `json:"company_name" bson:"company_name"`
	JobDescription string    `json:"job_description" bson:"job_description"`
	Location       string    `json:"location" bson:"location"`
	IsPartTime     bool      `json:"is_part_time" bson:"is_part_time"`
	IsOffice       bool      `json:"is_office" bson:"is_office"`
	Salary         string    `json:"salary" bson:"salary"`
	ReferralCode   string    `json:"referral_code" bson:"referral_code"`
	ApplyLink      string    `json:"apply_link" bson:"apply_link"`
	AuthorID       string    `json:"author_id" bson:"author_id"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
