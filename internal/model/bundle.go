package model

import "time"

// Bundle represents an archived zip of generated exam documents.
// Like every type in this package it carries no persistence tags and can be used across layers.
type Bundle struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	StoragePath  string    `json:"storage_path"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	Course       string    `json:"course"`
	ExamType     string    `json:"exam_type"`
	RoomCount    int       `json:"room_count"`
	StudentCount int       `json:"student_count"`
	CreatedAt    time.Time `json:"created_at"`
}
