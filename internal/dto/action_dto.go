package dto

import (
	"time"

	"github.com/yrwanda/practicelog/internal/model"
)

type CreateActionInput struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type FinishInput struct {
	Note *string `json:"note"`
}

// All timestamps below serialize as Unix epoch seconds.

type ActionResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	Name           string `json:"name"`
	CreateTime     int64  `json:"create_time"`
	LastFinishTime *int64 `json:"last_finish_time"`
}

type ActionWithStatsResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	Name           string `json:"name"`
	CreateTime     int64  `json:"create_time"`
	LastFinishTime *int64 `json:"last_finish_time"`
	TotalFinished  int64  `json:"total_finished"`
	FinishedToday  bool   `json:"finished_today"`
}

type RecordResponse struct {
	ID         int64   `json:"id"`
	ActionID   int64   `json:"action_id"`
	FinishTime int64   `json:"finish_time"`
	Note       *string `json:"note"`
}

func NewActionResponse(a *model.PracticeAction) ActionResponse {
	return ActionResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		Name:           a.Name,
		CreateTime:     a.CreateTime.Unix(),
		LastFinishTime: unixOrNil(a.LastFinishTime),
	}
}

func NewActionWithStatsResponse(a *model.ActionWithStats) ActionWithStatsResponse {
	return ActionWithStatsResponse{
		ID:             a.ID,
		UserID:         a.UserID,
		Name:           a.Name,
		CreateTime:     a.CreateTime.Unix(),
		LastFinishTime: unixOrNil(a.LastFinishTime),
		TotalFinished:  a.TotalFinished,
		FinishedToday:  a.FinishedToday,
	}
}

func NewRecordResponse(r *model.PracticeRecord) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		ActionID:   r.ActionID,
		FinishTime: r.FinishTime.Unix(),
		Note:       r.Note,
	}
}

func unixOrNil(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ts := t.Unix()
	return &ts
}
