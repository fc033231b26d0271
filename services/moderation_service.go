package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"lovelink_server/models"

	"github.com/google/uuid"
)

// ModerationService handles blocking, reporting and the photo verification
// oracle. Real content moderation lives in an external system; the oracle
// here only simulates its accept/reject answer.
type ModerationService struct {
	Store Store

	// Rand drives the verification oracle; tests inject a seeded source.
	Rand *rand.Rand
}

// NewModerationService creates a ModerationService with a time-seeded oracle
func NewModerationService(store Store) *ModerationService {
	return &ModerationService{
		Store: store,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BlockUser records the block and removes any match records between the pair,
// in either direction and any status.
func (ms *ModerationService) BlockUser(ctx context.Context, blockerID, blockedID string) error {
	if err := ms.Store.AppendBlock(ctx, models.BlockRecord{
		BlockerID: blockerID,
		BlockedID: blockedID,
		CreatedAt: time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to record block: %w", err)
	}

	for _, pair := range [][2]string{{blockerID, blockedID}, {blockedID, blockerID}} {
		record, err := ms.Store.MatchFrom(ctx, pair[0], pair[1])
		if err != nil {
			return fmt.Errorf("failed to look up match record: %w", err)
		}
		if record != nil {
			if err := ms.Store.DeleteMatch(ctx, record.MatchID); err != nil {
				return fmt.Errorf("failed to remove match record: %w", err)
			}
		}
	}

	log.Printf("🚫 %s blocked %s", blockerID, blockedID)
	return nil
}

// ReportUser appends an abuse report. Reports are informational only.
func (ms *ModerationService) ReportUser(ctx context.Context, reporterID, reportedID, reason string) (*models.ReportRecord, error) {
	report := models.ReportRecord{
		ReportID:   uuid.NewString(),
		ReporterID: reporterID,
		ReportedID: reportedID,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}
	if err := ms.Store.AppendReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to record report: %w", err)
	}
	return &report, nil
}

// PhotoVerification is the oracle's answer for one photo
type PhotoVerification struct {
	PhotoKey string `json:"photoKey"`
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
}

// photoRejectRate is the simulated share of uploads the oracle rejects
const photoRejectRate = 0.1

// VerifyPhoto asks the stand-in verification oracle about an uploaded photo
func (ms *ModerationService) VerifyPhoto(ctx context.Context, photoKey string) (*PhotoVerification, error) {
	verification := &PhotoVerification{PhotoKey: photoKey, Approved: true}
	if ms.Rand.Float64() < photoRejectRate {
		verification.Approved = false
		verification.Reason = "photo failed automated review"
	}
	return verification, nil
}
