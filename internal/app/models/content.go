package models

import "strings"

type BlogPost struct {
	ID            int64  `json:"id"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt,omitempty"`
	Content       string `json:"content,omitempty"`
	Category      string `json:"category,omitempty"`
	Author        string `json:"author,omitempty"`
	CoverImageURL string `json:"cover_image,omitempty"`
	PublishedAt   string `json:"published_at,omitempty"`
	VideoURL      string `json:"video_url,omitempty"`
}

func (p BlogPost) SearchText() string {
	return strings.Join([]string{p.Title, p.Excerpt, p.Category, p.Author}, " ")
}

type Question struct {
	ID        int64      `json:"id"`
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Category  string     `json:"category,omitempty"`
	Specialty *Specialty `json:"specialty,omitempty"`
	AskedBy   string     `json:"asked_by,omitempty"`
	Answers   []Answer   `json:"answers,omitempty"`
	CreatedAt string     `json:"created_at,omitempty"`
	Views     int        `json:"views"`
}

func (q Question) SearchText() string {
	specialty := ""
	if q.Specialty != nil {
		specialty = q.Specialty.Name
	}
	return strings.Join([]string{q.Title, q.Content, q.Category, specialty}, " ")
}

type Answer struct {
	ID        int64          `json:"id"`
	Content   string         `json:"content"`
	Doctor    *DoctorSummary `json:"doctor,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
}

type DoctorSummary struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}
