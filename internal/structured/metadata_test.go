// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structured

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFieldMetadataDefaults(t *testing.T) {
	meta := extractFieldMetadata(nil)

	assert.Equal(t, "N/A", meta.AuditYear)
	assert.Equal(t, "N/A", meta.AuditDates)
	assert.Equal(t, "N/A", meta.State)
	assert.Equal(t, "Inspection Report", meta.ReportType)
	assert.Empty(t, meta.DocumentName)
}

func TestExtractFieldMetadataFields(t *testing.T) {
	lines := []string{
		"Document Name: ir_office_2023",
		"Audit Year: 2022-23",
		"State: Kerala",
		"Report Type: Compliance Audit",
		"# A heading line is not a field",
		"Just a sentence without a colon pattern",
	}

	meta := extractFieldMetadata(lines)

	assert.Equal(t, "ir_office_2023", meta.DocumentName)
	assert.Equal(t, "2022-23", meta.AuditYear)
	assert.Equal(t, "Kerala", meta.State)
	assert.Equal(t, "Compliance Audit", meta.ReportType)
}

func TestExtractFieldMetadataKeyCase(t *testing.T) {
	meta := extractFieldMetadata([]string{"AUDIT YEAR: 2021-22"})
	assert.Equal(t, "2021-22", meta.AuditYear)
}

func TestHeadingYearsAndState(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		years   []string
		state   string
	}{
		{
			name:    "single range",
			heading: "INSPECTION REPORT ON THE OFFICE FOR 2022-23",
			years:   []string{"2022-23"},
		},
		{
			name:    "slash range",
			heading: "Accounts for 2021/22",
			years:   []string{"2021/22"},
		},
		{
			name:    "month span",
			heading: "Audit from April 2021 to March 2023",
			years:   []string{"2021", "2023"},
		},
		{
			name:    "period span",
			heading: "Report for the period 2019 to 2021",
			years:   []string{"2019", "2021"},
		},
		{
			name:    "duplicates removed in order",
			heading: "For 2022-23 and again 2022-23 then 2023-24",
			years:   []string{"2022-23", "2023-24"},
		},
		{
			name:    "state detected case insensitively",
			heading: "OFFICE OF THE DIRECTOR, tamil nadu",
			state:   "Tamil Nadu",
		},
		{
			name:    "years and state together",
			heading: "INSPECTION REPORT, Government of Kerala, 2020-21",
			years:   []string{"2020-21"},
			state:   "Kerala",
		},
		{
			name:    "nothing found",
			heading: "OFFICE OF THE REGISTRAR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years, state := headingYearsAndState(tt.heading)
			assert.Equal(t, tt.years, years)
			assert.Equal(t, tt.state, state)
		})
	}
}

func TestIsAuditDateLine(t *testing.T) {
	assert.True(t, isAuditDateLine("Audit conducted from 01/02/2023 to 05/02/2023"))
	assert.True(t, isAuditDateLine("15-03-2022 to 20-03-2022"))
	assert.True(t, isAuditDateLine("Date of audit: March 2023"))
	assert.False(t, isAuditDateLine("An ordinary opening paragraph."))
}
