package models

import "time"

// BlockRecord hides the blocked user from the blocker everywhere
type BlockRecord struct {
	BlockerID string    `dynamodbav:"blockerId" json:"blockerId"` // ✅ Partition Key
	BlockedID string    `dynamodbav:"blockedId" json:"blockedId"`
	CreatedAt time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// ReportRecord is an append-only abuse report
type ReportRecord struct {
	ReportID   string    `dynamodbav:"reportId" json:"reportId"`
	ReporterID string    `dynamodbav:"reporterId" json:"reporterId"`
	ReportedID string    `dynamodbav:"reportedId" json:"reportedId"`
	Reason     string    `dynamodbav:"reason" json:"reason"`
	CreatedAt  time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// BlocksTable is the DynamoDB table name for block records
const BlocksTable = "Blocks"

// ReportsTable is the DynamoDB table name for report records
const ReportsTable = "Reports"
