package handler

import (
	"time"

	"github.com/alumnihub/job-referral-api/internal/core/domain"
	"github.com/alumnihub/job-referral-api/internal/core/ports"
)

// --- Request / Response types ---

type createPostRequest struct {
	JobRole        string `json:"job_role"        validate:"required"`
	CompanyName    string `json:"company_name"    validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	Location       string `json:"location"        validate:"required"`
	IsPartTime     bool   `json:"is_part_time"`
	IsOffice       bool   `json:"is_office"`
	Salary         string `json:"salary"          validate:"required"`
	ReferralCode   string `json:"referral_code"`
	ApplyLink      string `json:"apply_link"      validate:"required,url"`
}

type createPostResponse struct {
	Message string `json:"message"`
	PostID  string `json:"post_id"`
}

type postResponse struct {
	ID             string    `json:"id"`
	JobRole        string    `json:"job_role"`
	CompanyName    string    `json:"company_name"`
	JobDescription string    `json:"job_description"`
	Location       string    `json:"location"`
	IsPartTime     bool      `json:"is_part_time"`
	IsOffice       bool      `json:"is_office"`
	Salary         string    `json:"salary"`
	ReferralCode   string    `json:"referral_code"`
	ApplyLink      string    `json:"apply_link"`
	CreatedAt      time.Time `json:"created_at"`
}

// --- Mappers ---

func toCreatePostInput(req createPostRequest, authorID string) ports.CreatePostInput {
	return ports.CreatePostInput{
		JobRole:        req.JobRole,
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
		Location:       req.Location,
		IsPartTime:     req.IsPartTime,
		IsOffice:       req.IsOffice,
		Salary:         req.Salary,
		ReferralCode:   req.ReferralCode,
		ApplyLink:      req.ApplyLink,
		AuthorID:       authorID,
	}
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:             p.ID,
		JobRole:        p.JobRole,
		CompanyName:    p.CompanyName,
		JobDescription: p.JobDescription,
		Location:       p.Location,
		IsPartTime:     p.IsPartTime,
		IsOffice:       p.IsOffice,
		Salary:         p.Salary,
		ReferralCode:   p.ReferralCode,
		ApplyLink:      p.ApplyLink,
		CreatedAt:      p.CreatedAt.UTC(),
	}
}
