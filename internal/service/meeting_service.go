package service

import (
	"context"

	"soulshub/internal/editable"
	"soulshub/internal/models"
	"soulshub/internal/repository"
)

// MeetingService serves the meeting section and its editing lifecycle.
type MeetingService interface {
	Meeting(ctx context.Context) (models.MeetingInfo, error)

	BeginEdit(ctx context.Context) (models.MeetingInfo, error)
	UpdateDraft(ctx context.Context, draft models.MeetingInfo) (models.MeetingInfo, error)
	SaveEdit(ctx context.Context) (models.MeetingInfo, error)
	CancelEdit()
}

type meetingService struct {
	meetings repository.MeetingRepository
	unit     *editable.Unit[models.MeetingInfo]
}

// NewMeetingService creates a new meeting service.
func NewMeetingService(meetings repository.MeetingRepository) MeetingService {
	s := &meetingService{meetings: meetings}
	s.unit = editable.NewUnit(func(ctx context.Context, m models.MeetingInfo) error {
		return meetings.SaveMeeting(ctx, m)
	})
	return s
}

func (s *meetingService) Meeting(ctx context.Context) (models.MeetingInfo, error) {
	m, err := s.meetings.Meeting(ctx)
	if err != nil {
		return models.MeetingInfo{}, models.NewInternalError(err)
	}
	return m, nil
}

func (s *meetingService) BeginEdit(ctx context.Context) (models.MeetingInfo, error) {
	current, err := s.Meeting(ctx)
	if err != nil {
		return models.MeetingInfo{}, err
	}
	return s.unit.Begin(current)
}

func (s *meetingService) UpdateDraft(ctx context.Context, draft models.MeetingInfo) (models.MeetingInfo, error) {
	return s.unit.Update(func(m *models.MeetingInfo) { *m = draft })
}

func (s *meetingService) SaveEdit(ctx context.Context) (models.MeetingInfo, error) {
	return s.unit.Commit(ctx)
}

func (s *meetingService) CancelEdit() {
	s.unit.Discard()
}
