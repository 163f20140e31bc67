package routing_test

import (
	"encoding/json"
	"testing"
	"time"

	"docuflow-backend/internal/database/models"
	"docuflow-backend/internal/routing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(name string, priority int, mutate func(*models.RoutingRule)) models.RoutingRule {
	r := models.RoutingRule{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		Name:            name,
		Priority:        priority,
		IsActive:        true,
		StorageConfigID: uuid.New(),
		FolderTemplate:  "{date}/{sender_email}",
	}
	if mutate != nil {
		mutate(&r)
	}
	return r
}

func fileTypes(t *testing.T, types ...string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(types)
	require.NoError(t, err)
	return raw
}

func TestMatchHighestPriorityWins(t *testing.T) {
	engine := routing.NewEngine()
	rules := []models.RoutingRule{
		rule("catch-all", 0, nil),
		rule("invoices", 10, func(r *models.RoutingRule) {
			r.SubjectPattern = "invoice"
		}),
	}

	matched, ok := engine.Match(rules, routing.Message{
		SenderEmail: "a@example.com",
		Subject:     "Invoice for March",
		FileName:    "march.pdf",
	})

	require.True(t, ok)
	assert.Equal(t, "invoices", matched.Name)
}

func TestMatchFirstMatchWinsOnEqualPriority(t *testing.T) {
	engine := routing.NewEngine()
	rules := []models.RoutingRule{
		rule("first", 5, nil),
		rule("second", 5, nil),
	}

	matched, ok := engine.Match(rules, routing.Message{SenderEmail: "a@example.com"})

	require.True(t, ok)
	assert.Equal(t, "first", matched.Name)
}

func TestMatchAllConditionsMustHold(t *testing.T) {
	engine := routing.NewEngine()
	rules := []models.RoutingRule{
		rule("hr-pdfs", 10, func(r *models.RoutingRule) {
			r.SenderPattern = "@corp\\.example\\.com$"
			r.SubjectPattern = "contract"
			r.FileTypes = fileTypes(t, "pdf")
		}),
	}

	// Subject matches, sender does not
	_, ok := engine.Match(rules, routing.Message{
		SenderEmail: "someone@other.com",
		Subject:     "Contract renewal",
		FileName:    "contract.pdf",
	})
	assert.False(t, ok)

	// All three conditions hold
	matched, ok := engine.Match(rules, routing.Message{
		SenderEmail: "jane@corp.example.com",
		Subject:     "Signed CONTRACT attached",
		FileName:    "Contract.PDF",
	})
	require.True(t, ok)
	assert.Equal(t, "hr-pdfs", matched.Name)
}

func TestMatchFileTypeDotOptional(t *testing.T) {
	engine := routing.NewEngine()
	rules := []models.RoutingRule{
		rule("docs", 1, func(r *models.RoutingRule) {
			r.FileTypes = fileTypes(t, ".docx", "pdf")
		}),
	}

	_, ok := engine.Match(rules, routing.Message{FileName: "cv.DOCX"})
	assert.True(t, ok)

	_, ok = engine.Match(rules, routing.Message{FileName: "cv.txt"})
	assert.False(t, ok)
}

func TestMatchSkipsInactiveRules(t *testing.T) {
	engine := routing.NewEngine()
	rules := []models.RoutingRule{
		rule("disabled", 10, func(r *models.RoutingRule) { r.IsActive = false }),
		rule("fallback", 0, nil),
	}

	matched, ok := engine.Match(rules, routing.Message{SenderEmail: "a@example.com"})

	require.True(t, ok)
	assert.Equal(t, "fallback", matched.Name)
}

func TestMatchSkipsInvalidPattern(t *testing.T) {
	engine := routing.NewEngine()
	rules := []models.RoutingRule{
		rule("broken", 10, func(r *models.RoutingRule) { r.SenderPattern = "([" }),
		rule("fallback", 0, nil),
	}

	matched, ok := engine.Match(rules, routing.Message{SenderEmail: "a@example.com"})

	require.True(t, ok)
	assert.Equal(t, "fallback", matched.Name)
}

func TestMatchNoRuleMatches(t *testing.T) {
	engine := routing.NewEngine()
	rules := []models.RoutingRule{
		rule("pdf-only", 1, func(r *models.RoutingRule) { r.FileTypes = fileTypes(t, "pdf") }),
	}

	_, ok := engine.Match(rules, routing.Message{FileName: "notes.txt"})
	assert.False(t, ok)
}

func TestRenderFolder(t *testing.T) {
	now := time.Date(2026, 3, 7, 15, 4, 5, 0, time.UTC)
	msg := routing.Message{
		SenderEmail:  "jane@corp.example.com",
		EmployeeName: "Jane Doe",
		DocumentType: "pdf",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"basic", "{year}/{month}/{sender_email}", "2026/03/jane@corp.example.com"},
		{"date", "{date}/{employee_name}", "2026-03-07/Jane Doe"},
		{"unknown placeholder collapses", "docs/{unknown}/{document_type}", "docs/pdf"},
		{"empty value collapses separators", "a/{request_title}/b", "a/b"},
		{"leading and trailing slashes stripped", "/inbound/{year}/", "inbound/2026"},
		{"no placeholders", "static/folder", "static/folder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, routing.RenderFolder(tt.template, msg, now))
		})
	}
}

func TestRenderFolderSanitizesValues(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	msg := routing.Message{SenderName: "Evil/../Name"}

	got := routing.RenderFolder("inbox/{sender_name}", msg, now)
	assert.Equal(t, "inbox/Evil-..-Name", got)
}

func TestValidatePattern(t *testing.T) {
	assert.NoError(t, routing.ValidatePattern(""))
	assert.NoError(t, routing.ValidatePattern("@example\\.com$"))
	assert.Error(t, routing.ValidatePattern("(["))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "pdf", routing.FileExtension("Invoice.PDF"))
	assert.Equal(t, "docx", routing.FileExtension("a/b/cv.docx"))
	assert.Equal(t, "", routing.FileExtension("README"))
}
