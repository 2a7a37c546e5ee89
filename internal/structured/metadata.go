// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structured

import (
	"regexp"
	"strings"
)

// indianStates is the fixed list scanned for in document headings.
var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand",
	"Karnataka", "Kerala", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan",
	"Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
	"Uttarakhand", "West Bengal", "Delhi", "Puducherry",
	"Jammu and Kashmir", "Ladakh",
}

var (
	fieldLineRe  = regexp.MustCompile(`^(.*?):\s*(.*)$`)
	yearRangeRe  = regexp.MustCompile(`(20\d{2}[\-/][0-9]{2,4})`)
	monthSpanRe  = regexp.MustCompile(`(?i)from\s+([A-Za-z]+)\s+(20\d{2})\s+to\s+([A-Za-z]+)\s+(20\d{2})`)
	periodSpanRe = regexp.MustCompile(`(?i)for the period.*?(20\d{2})\s*(?:-|to)\s*(20\d{2})`)
	dateLineRe   = regexp.MustCompile(`(\d{2}/\d{2}/\d{4}|\d{2}-\d{2}-\d{4})`)
)

// extractFieldMetadata scans the top-of-file "Field: Value" lines into a
// Metadata record with the standard defaults.
func extractFieldMetadata(lines []string) Metadata {
	meta := Metadata{
		AuditYear:  "N/A",
		AuditDates: "N/A",
		State:      "N/A",
		ReportType: "Inspection Report",
	}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := fieldLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(m[1]))
		value := strings.TrimSpace(m[2])
		switch key {
		case "document name":
			meta.DocumentName = value
		case "document heading":
			meta.DocumentHeading = value
		case "audit year":
			meta.AuditYear = value
		case "audit dates":
			meta.AuditDates = value
		case "state":
			meta.State = value
		case "report type":
			meta.ReportType = value
		}
	}
	return meta
}

// headingYearsAndState extracts audit year ranges and a state name from
// the document heading. Year matches keep first-seen order with
// duplicates removed.
func headingYearsAndState(heading string) (years []string, state string) {
	matches := yearRangeRe.FindAllString(heading, -1)

	if m := monthSpanRe.FindStringSubmatch(heading); m != nil {
		matches = append(matches, m[2], m[4])
	}
	for _, m := range periodSpanRe.FindAllStringSubmatch(heading, -1) {
		matches = append(matches, m[1], m[2])
	}

	seen := make(map[string]struct{}, len(matches))
	for _, y := range matches {
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}

	lower := strings.ToLower(heading)
	for _, s := range indianStates {
		if strings.Contains(lower, strings.ToLower(s)) {
			state = s
			break
		}
	}
	return years, state
}

// isAuditDateLine reports whether a line looks like the audit date line
// expected directly below the document heading.
func isAuditDateLine(line string) bool {
	return dateLineRe.MatchString(line) || strings.Contains(strings.ToLower(line), "date")
}
