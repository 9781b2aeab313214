package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/medbank-labs/medbank-cli/internal/core/domain"
)

// placeholderPattern flags authoring leftovers in prose fields.
var placeholderPattern = regexp.MustCompile(`(?i)\b(TODO|FIXME|placeholder)\b`)

// icd11Pattern is the shape of a valid ICD-11 code (e.g. "A15.0").
var icd11Pattern = regexp.MustCompile(`^[A-Z]\d{1,2}\.?\d{0,3}$`)

// timeLayouts are the timestamp formats accepted in authored records.
var timeLayouts = []string{time.RFC3339, "2006-01-02"}

// Validator checks that a raw record satisfies the EducationalContent
// schema. All violations are collected in one pass so authors get a full
// report; the validator never panics on bad data.
type Validator struct {
	policy domain.ValidationPolicy
}

// NewValidator creates a validator with the given policy.
func NewValidator(policy domain.ValidationPolicy) *Validator {
	if !policy.Bilingual.IsValid() {
		policy.Bilingual = domain.BilingualWarn
	}
	return &Validator{policy: policy}
}

// Validate checks one raw record. The typed record is returned only when no
// error-severity issues were found; warnings may accompany a valid record.
func (v *Validator) Validate(data map[string]any) (*domain.EducationalContent, []domain.ValidationIssue) {
	c := &collector{policy: v.policy}
	if data == nil {
		c.errf("", "record is empty")
		return nil, c.issues
	}

	record := &domain.EducationalContent{}
	record.ID = c.requireString(data, "id")
	c.recordID = record.ID

	record.Type = domain.ContentType(c.requireString(data, "type"))
	if record.Type != "" && !record.Type.IsValid() {
		c.errf("type", "unknown content type %q", record.Type)
	}

	record.Name = c.requireString(data, "name")
	if placeholderPattern.MatchString(record.Name) {
		c.warnf("name", "contains placeholder text")
	}

	record.NameES = c.optionalString(data, "nameEs")
	switch {
	case strings.TrimSpace(record.NameES) == "":
		c.warnf("nameEs", "missing Spanish name")
	case placeholderPattern.MatchString(record.NameES):
		c.warnf("nameEs", "contains placeholder text")
	}
	record.AlternateNames = c.stringSlice(data, "alternateNames")
	record.Contributors = c.stringSlice(data, "contributors")

	record.Levels = c.levels(data)
	record.Media = c.media(data)
	record.Citations = c.citations(data)
	record.CrossReferences = c.crossReferences(data)
	record.Tags = c.tags(data)

	record.CreatedAt = c.timestamp(data, "createdAt")
	record.UpdatedAt = c.timestamp(data, "updatedAt")

	record.Version = c.version(data)

	record.Status = domain.ContentStatus(c.requireString(data, "status"))
	if record.Status != "" && !record.Status.IsValid() {
		c.errf("status", "unknown status %q", record.Status)
	}

	if domain.CountErrors(c.issues) > 0 {
		return nil, c.issues
	}
	return record, c.issues
}

// collector accumulates issues while walking a raw record.
type collector struct {
	policy   domain.ValidationPolicy
	recordID string
	issues   []domain.ValidationIssue
}

func (c *collector) errf(path, format string, args ...any) {
	c.add(domain.SeverityError, path, format, args...)
}

func (c *collector) warnf(path, format string, args ...any) {
	c.add(domain.SeverityWarning, path, format, args...)
}

func (c *collector) add(sev domain.Severity, path, format string, args ...any) {
	c.issues = append(c.issues, domain.ValidationIssue{
		RecordID: c.recordID,
		Path:     path,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
	})
}

// bilingualf grades a convention violation per the configured policy.
func (c *collector) bilingualf(path, format string, args ...any) {
	sev := domain.SeverityWarning
	if c.policy.Bilingual == domain.BilingualReject {
		sev = domain.SeverityError
	}
	c.add(sev, path, format, args...)
}

func (c *collector) requireString(m map[string]any, path string) string {
	val, ok := m[lastKey(path)]
	if !ok {
		c.errf(path, "missing required field")
		return ""
	}
	s, ok := val.(string)
	if !ok {
		c.errf(path, "expected a string, got %T", val)
		return ""
	}
	if strings.TrimSpace(s) == "" {
		c.errf(path, "must not be empty")
		return ""
	}
	return s
}

func (c *collector) optionalString(m map[string]any, path string) string {
	val, ok := m[lastKey(path)]
	if !ok || val == nil {
		return ""
	}
	s, ok := val.(string)
	if !ok {
		c.errf(path, "expected a string, got %T", val)
		return ""
	}
	return s
}

func (c *collector) stringSlice(m map[string]any, path string) []string {
	val, ok := m[lastKey(path)]
	if !ok || val == nil {
		return nil
	}
	items, ok := val.([]any)
	if !ok {
		c.errf(path, "expected a list, got %T", val)
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			c.errf(fmt.Sprintf("%s.%d", path, i), "expected a string, got %T", item)
			continue
		}
		out = append(out, s)
	}
	return out
}

// object returns a nested JSON object, or nil with an issue on a type
// mismatch. Absence is not an issue; callers decide whether it is required.
func (c *collector) object(m map[string]any, path string) (map[string]any, bool) {
	val, ok := m[lastKey(path)]
	if !ok || val == nil {
		return nil, false
	}
	obj, ok := val.(map[string]any)
	if !ok {
		c.errf(path, "expected an object, got %T", val)
		return nil, false
	}
	return obj, true
}

func (c *collector) objectList(m map[string]any, path string) []map[string]any {
	val, ok := m[lastKey(path)]
	if !ok || val == nil {
		return nil
	}
	items, ok := val.([]any)
	if !ok {
		c.errf(path, "expected a list, got %T", val)
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			c.errf(fmt.Sprintf("%s.%d", path, i), "expected an object, got %T", item)
			continue
		}
		out = append(out, obj)
	}
	return out
}

// intValue normalises the numeric types a JSON decoder may produce.
func intValue(val any) (int, bool) {
	switch n := val.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// bilingual parses a legacy delimited string, grading violations of the
// convention per policy.
func (c *collector) bilingual(path, raw string) domain.BilingualText {
	text, ok := domain.ParseBilingual(raw)
	if !ok {
		c.bilingualf(path, "missing bilingual separator %q", "|")
		return text
	}
	if !text.IsComplete() {
		c.bilingualf(path, "bilingual text has an empty half")
	}
	return text
}

func (c *collector) bilingualSlice(m map[string]any, path string) []domain.BilingualText {
	raw := c.stringSlice(m, path)
	if len(raw) == 0 {
		return nil
	}
	out := make([]domain.BilingualText, 0, len(raw))
	for i, s := range raw {
		out = append(out, c.bilingual(fmt.Sprintf("%s.%d", path, i), s))
	}
	return out
}

func (c *collector) levels(data map[string]any) map[int]domain.LevelContent {
	if _, present := data["levels"]; !present {
		c.errf("levels", "missing required field")
		return nil
	}
	obj, ok := c.object(data, "levels")
	if !ok {
		return nil
	}

	levels := make(map[int]domain.LevelContent, len(obj))
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path := "levels." + key
		num, err := strconv.Atoi(key)
		if err != nil {
			c.errf(path, "level key must be an integer")
			continue
		}
		if num < domain.MinLevel || num > domain.MaxLevel {
			c.errf(path, "level must be between %d and %d", domain.MinLevel, domain.MaxLevel)
			continue
		}
		body, ok := obj[key].(map[string]any)
		if !ok {
			c.errf(path, "expected an object, got %T", obj[key])
			continue
		}
		levels[num] = c.levelContent(path, num, body)
	}

	if c.policy.RequireAllLevels {
		for k := domain.MinLevel; k <= domain.MaxLevel; k++ {
			if _, ok := levels[k]; !ok {
				c.errf(fmt.Sprintf("levels.%d", k), "missing required level")
			}
		}
	} else if len(levels) == 0 {
		c.errf("levels", "at least one level is required")
	}

	return levels
}

func (c *collector) levelContent(path string, num int, body map[string]any) domain.LevelContent {
	lc := domain.LevelContent{Level: num}

	if declared, ok := intValue(body["level"]); !ok {
		c.errf(path+".level", "missing or non-integer level field")
	} else if declared != num {
		c.errf(path+".level", "level field %d does not match key %d", declared, num)
	}

	if summary := c.requireString(body, path+".summary"); summary != "" {
		lc.Summary = c.bilingual(path+".summary", summary)
		if placeholderPattern.MatchString(summary) {
			c.warnf(path+".summary", "contains placeholder text")
		}
	}

	lc.Explanation = c.requireString(body, path+".explanation")
	if placeholderPattern.MatchString(lc.Explanation) {
		c.warnf(path+".explanation", "contains placeholder text")
	}

	lc.KeyTerms = c.keyTerms(body, path+".keyTerms")
	if len(lc.KeyTerms) == 0 {
		c.warnf(path+".keyTerms", "level defines no key terms")
	}

	lc.Analogies = c.bilingualSlice(body, path+".analogies")
	lc.Examples = c.bilingualSlice(body, path+".examples")
	lc.PatientCounselingPoints = c.bilingualSlice(body, path+".patientCounselingPoints")
	lc.ClinicalNotes = c.optionalString(body, path+".clinicalNotes")
	if placeholderPattern.MatchString(lc.ClinicalNotes) {
		c.warnf(path+".clinicalNotes", "contains placeholder text")
	}

	return lc
}

func (c *collector) keyTerms(body map[string]any, path string) []domain.KeyTerm {
	items := c.objectList(body, path)
	if len(items) == 0 {
		return nil
	}
	terms := make([]domain.KeyTerm, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s.%d", path, i)
		term := domain.KeyTerm{
			Term:          c.requireString(item, itemPath+".term"),
			Pronunciation: c.optionalString(item, itemPath+".pronunciation"),
		}
		if placeholderPattern.MatchString(term.Term) {
			c.warnf(itemPath+".term", "contains placeholder text")
		}
		if def := c.requireString(item, itemPath+".definition"); def != "" {
			term.Definition = c.bilingual(itemPath+".definition", def)
			if placeholderPattern.MatchString(def) {
				c.warnf(itemPath+".definition", "contains placeholder text")
			}
		}
		terms = append(terms, term)
	}
	return terms
}

func (c *collector) media(data map[string]any) []domain.MediaRef {
	items := c.objectList(data, "media")
	if len(items) == 0 {
		return nil
	}
	refs := make([]domain.MediaRef, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("media.%d", i)
		refs = append(refs, domain.MediaRef{
			ID:          c.requireString(item, path+".id"),
			Type:        c.optionalString(item, path+".type"),
			Filename:    c.requireString(item, path+".filename"),
			Title:       c.optionalString(item, path+".title"),
			Description: c.optionalString(item, path+".description"),
		})
	}
	return refs
}

func (c *collector) citations(data map[string]any) []domain.Citation {
	items := c.objectList(data, "citations")
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]int, len(items))
	citations := make([]domain.Citation, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("citations.%d", i)
		cit := domain.Citation{
			ID:      c.requireString(item, path+".id"),
			Type:    domain.CitationType(c.optionalString(item, path+".type")),
			Title:   c.requireString(item, path+".title"),
			Authors: c.stringSlice(item, path+".authors"),
			Source:  c.optionalString(item, path+".source"),
			URL:     c.optionalString(item, path+".url"),
			Chapter: c.optionalString(item, path+".chapter"),
			License: c.optionalString(item, path+".license"),
		}
		if cit.Type != "" && !cit.Type.IsValid() {
			c.errf(path+".type", "unknown citation type %q", cit.Type)
		}
		if cit.ID != "" {
			if first, dup := seen[cit.ID]; dup {
				c.errf(path+".id", "citation id %q already used at citations.%d", cit.ID, first)
			} else {
				seen[cit.ID] = i
			}
		}
		citations = append(citations, cit)
	}
	return citations
}

func (c *collector) crossReferences(data map[string]any) []domain.CrossReference {
	items := c.objectList(data, "crossReferences")
	if len(items) == 0 {
		return nil
	}
	refs := make([]domain.CrossReference, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("crossReferences.%d", i)
		ref := domain.CrossReference{
			TargetID:     c.requireString(item, path+".targetId"),
			TargetType:   domain.ContentType(c.optionalString(item, path+".targetType")),
			Relationship: domain.Relationship(c.requireString(item, path+".relationship")),
			Label:        c.optionalString(item, path+".label"),
		}
		if ref.TargetType != "" && !ref.TargetType.IsValid() {
			c.errf(path+".targetType", "unknown content type %q", ref.TargetType)
		}
		if ref.Relationship != "" && !ref.Relationship.IsValid() {
			c.errf(path+".relationship", "unknown relationship %q", ref.Relationship)
		}
		if ref.Label == "" {
			c.warnf(path+".label", "cross-reference has no label")
		}
		refs = append(refs, ref)
	}
	return refs
}

func (c *collector) tags(data map[string]any) domain.Tags {
	if _, present := data["tags"]; !present {
		c.errf("tags", "missing required field")
		return domain.Tags{}
	}
	obj, ok := c.object(data, "tags")
	if !ok {
		return domain.Tags{}
	}

	tags := domain.Tags{
		Systems:           c.stringSlice(obj, "tags.systems"),
		Topics:            c.stringSlice(obj, "tags.topics"),
		Keywords:          c.stringSlice(obj, "tags.keywords"),
		ClinicalRelevance: domain.ClinicalRelevance(c.requireString(obj, "tags.clinicalRelevance")),
	}
	for i, system := range tags.Systems {
		if !strings.HasPrefix(system, "ICD-11") && !startsWithDigit(system) {
			continue
		}
		code := strings.TrimSpace(strings.TrimPrefix(system, "ICD-11:"))
		if !icd11Pattern.MatchString(code) {
			c.warnf(fmt.Sprintf("tags.systems.%d", i), "potentially invalid ICD-11 code format %q", code)
		}
	}
	if tags.ClinicalRelevance != "" && !tags.ClinicalRelevance.IsValid() {
		c.errf("tags.clinicalRelevance", "unknown clinical relevance %q", tags.ClinicalRelevance)
	}

	if exam, ok := c.object(obj, "tags.examRelevance"); ok {
		rel := &domain.ExamRelevance{}
		for i, e := range c.stringSlice(exam, "tags.examRelevance.exams") {
			et := domain.ExamType(e)
			if !et.IsValid() {
				c.errf(fmt.Sprintf("tags.examRelevance.exams.%d", i), "unknown exam type %q", e)
				continue
			}
			rel.Exams = append(rel.Exams, et)
		}
		if hy, ok := exam["highYield"].(bool); ok {
			rel.HighYield = hy
		}
		tags.ExamRelevance = rel
	}

	return tags
}

func (c *collector) timestamp(data map[string]any, path string) time.Time {
	raw := c.optionalString(data, path)
	if raw == "" {
		c.warnf(path, "missing timestamp")
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	c.warnf(path, "unparseable timestamp %q", raw)
	return time.Time{}
}

func (c *collector) version(data map[string]any) int {
	val, ok := data["version"]
	if !ok {
		c.errf("version", "missing required field")
		return 0
	}
	n, ok := intValue(val)
	if !ok {
		c.errf("version", "expected an integer, got %v", val)
		return 0
	}
	if n < 1 {
		c.errf("version", "must be at least 1, got %d", n)
		return 0
	}
	return n
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// lastKey returns the final segment of a dotted path, which is the actual
// map key. Paths carry the full location for reporting only.
func lastKey(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}
