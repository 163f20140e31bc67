package importer

import (
	"strings"
)

// Field is a canonical employee field an import column can map to.
type Field string

const (
	FieldFirstName  Field = "first_name"
	FieldLastName   Field = "last_name"
	FieldFullName   Field = "full_name"
	FieldEmail      Field = "email"
	FieldDepartment Field = "department"
	FieldRole       Field = "role"
	FieldSkills     Field = "skills"
	FieldPhone      Field = "phone"
)

// headerSynonyms maps normalized header spellings to canonical fields. Keys
// are the output of normalizeHeader.
var headerSynonyms = map[string]Field{
	"first name": FieldFirstName,
	"firstname":  FieldFirstName,
	"given name": FieldFirstName,
	"fname":      FieldFirstName,
	"forename":   FieldFirstName,

	"last name":   FieldLastName,
	"lastname":    FieldLastName,
	"surname":     FieldLastName,
	"family name": FieldLastName,
	"lname":       FieldLastName,

	"full name":     FieldFullName,
	"fullname":      FieldFullName,
	"name":          FieldFullName,
	"employee name": FieldFullName,

	"email":         FieldEmail,
	"e mail":        FieldEmail,
	"email address": FieldEmail,
	"mail":          FieldEmail,
	"work email":    FieldEmail,

	"department": FieldDepartment,
	"dept":       FieldDepartment,
	"team":       FieldDepartment,
	"division":   FieldDepartment,

	"role":          FieldRole,
	"employee role": FieldRole,
	"type":          FieldRole,
	"position":      FieldRole,

	"skills":    FieldSkills,
	"skill set": FieldSkills,
	"skillset":  FieldSkills,
	"tags":      FieldSkills,

	"phone":         FieldPhone,
	"phone number":  FieldPhone,
	"telephone":     FieldPhone,
	"mobile":        FieldPhone,
	"mobile number": FieldPhone,
	"cell":          FieldPhone,
}

// normalizeHeader lowercases, trims and collapses separators so header
// spellings like "First_Name" and " first  name " map to the same key.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(h)
	return strings.Join(strings.Fields(h), " ")
}

// MapHeaders resolves raw header cells to canonical fields. Unrecognized
// headers come back in unknown (original spelling, deduplicated); their
// columns are ignored during parsing.
func MapHeaders(headers []string) (mapping map[int]Field, unknown []string) {
	mapping = make(map[int]Field, len(headers))
	seenFields := make(map[Field]bool, len(headers))
	seenUnknown := make(map[string]bool)

	for i, h := range headers {
		normalized := normalizeHeader(h)
		if normalized == "" {
			continue
		}
		field, ok := headerSynonyms[normalized]
		if !ok {
			if !seenUnknown[h] {
				seenUnknown[h] = true
				unknown = append(unknown, h)
			}
			continue
		}
		// First column wins when the same field appears twice.
		if seenFields[field] {
			continue
		}
		seenFields[field] = true
		mapping[i] = field
	}
	return mapping, unknown
}
