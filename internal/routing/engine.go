// Package routing evaluates an organization's routing rules against inbound
// email metadata to pick a storage destination and folder path.
package routing

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"docuflow-backend/internal/database/models"
	"docuflow-backend/internal/logger"
)

// Message carries the inbound email metadata a rule is evaluated against.
// One Message describes one attachment; multi-attachment mails are evaluated
// attachment by attachment.
type Message struct {
	SenderEmail  string
	SenderName   string
	Subject      string
	FileName     string
	EmployeeName string
	DocumentType string
	RequestTitle string
	Organization string
}

// Engine evaluates routing rules. Stateless and safe for concurrent use.
type Engine struct {
	log *logger.Logger
}

// NewEngine creates a rule evaluation engine.
func NewEngine() *Engine {
	return &Engine{log: logger.New()}
}

// Match returns the first rule that matches msg, scanning active rules in
// priority order (highest first, creation order breaking ties). A rule with
// no conditions matches everything. Returns false when no rule matches.
func (e *Engine) Match(rules []models.RoutingRule, msg Message) (*models.RoutingRule, bool) {
	ordered := make([]models.RoutingRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	for i := range ordered {
		rule := &ordered[i]
		if !rule.IsActive {
			continue
		}
		ok, err := e.ruleMatches(rule, msg)
		if err != nil {
			// A stored pattern that no longer compiles must not block the
			// rest of the chain; skip the rule and keep scanning.
			e.log.WithField("rule_id", rule.ID).Warnf("skipping rule with invalid pattern: %v", err)
			continue
		}
		if ok {
			return rule, true
		}
	}
	return nil, false
}

func (e *Engine) ruleMatches(rule *models.RoutingRule, msg Message) (bool, error) {
	if rule.SenderPattern != "" {
		re, err := compilePattern(rule.SenderPattern)
		if err != nil {
			return false, fmt.Errorf("sender_pattern: %w", err)
		}
		if !re.MatchString(msg.SenderEmail) {
			return false, nil
		}
	}

	if rule.SubjectPattern != "" {
		re, err := compilePattern(rule.SubjectPattern)
		if err != nil {
			return false, fmt.Errorf("subject_pattern: %w", err)
		}
		if !re.MatchString(msg.Subject) {
			return false, nil
		}
	}

	if types := rule.DecodeFileTypes(); len(types) > 0 {
		ext := FileExtension(msg.FileName)
		found := false
		for _, t := range types {
			if strings.EqualFold(strings.TrimPrefix(t, "."), ext) {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}

	return true, nil
}

// compilePattern compiles a stored rule pattern case-insensitively.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + pattern)
}

// ValidatePattern reports whether a rule pattern compiles. Used at rule
// create/update time so stored rules are normally evaluable.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return nil
	}
	_, err := compilePattern(pattern)
	return err
}

// FileExtension returns the lowercase filename extension without the dot.
func FileExtension(fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	return strings.ToLower(ext)
}

var placeholderRe = regexp.MustCompile(`\{[a-z_]+\}`)

// RenderFolder substitutes the template placeholders from msg and now, then
// normalizes the result into a clean relative folder path. Unknown
// placeholders render empty; duplicate and trailing separators collapse.
func RenderFolder(template string, msg Message, now time.Time) string {
	now = now.UTC()
	values := map[string]string{
		"{sender_email}":  msg.SenderEmail,
		"{sender_name}":   msg.SenderName,
		"{employee_name}": msg.EmployeeName,
		"{document_type}": msg.DocumentType,
		"{request_title}": msg.RequestTitle,
		"{organization}":  msg.Organization,
		"{date}":          now.Format("2006-01-02"),
		"{year}":          now.Format("2006"),
		"{month}":         now.Format("01"),
		"{day}":           now.Format("02"),
	}

	rendered := placeholderRe.ReplaceAllStringFunc(template, func(ph string) string {
		return sanitizeSegment(values[ph])
	})

	segments := make([]string, 0, 4)
	for _, seg := range strings.Split(rendered, "/") {
		seg = strings.TrimSpace(seg)
		if seg != "" && seg != "." && seg != ".." {
			segments = append(segments, seg)
		}
	}
	return strings.Join(segments, "/")
}

// sanitizeSegment strips characters that would break a folder path out of a
// substituted value.
func sanitizeSegment(v string) string {
	v = strings.ReplaceAll(v, "/", "-")
	v = strings.ReplaceAll(v, "\\", "-")
	return strings.TrimSpace(v)
}
