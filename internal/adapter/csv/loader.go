package csvadapter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campaign-analytics/internal/core/domain"
)

// HeaderError is returned when the header row does not list the campaign
// columns in table order.
type HeaderError struct {
	Position int
	Got      string
	Want     domain.Field
}

func (e *HeaderError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("csv header: missing column %d, want %q", e.Position+1, e.Want)
	}
	return fmt.Sprintf("csv header: column %d is %q, want %q", e.Position+1, e.Got, e.Want)
}

// dateLayouts are tried in order. Every non-ISO layout puts the day
// before the month.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2006-01-02",
}

// Load reads a delimited campaign table with a header row. Rows that fail
// to parse are recorded as rejected issues and skipped; suspicious but
// valid rows are kept and flagged. Only an unreadable header aborts the
// load.
func Load(r io.Reader, source string) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &HeaderError{Position: 0, Want: domain.Columns[0]}
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if err = checkHeader(header); err != nil {
		return nil, err
	}

	ds := &domain.Dataset{
		ID:        uuid.New(),
		Source:    source,
		LoadedAt:  time.Now().UTC(),
		Campaigns: []domain.Campaign{},
	}
	seen := make(map[int64]int)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				ds.Issues = append(ds.Issues, domain.Issue{Line: pe.Line, Reason: pe.Err.Error(), Rejected: true})
				continue
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if isBlank(row) {
			continue
		}
		line, _ := reader.FieldPos(0)

		c, issues := parseRow(row, line)
		if c != nil {
			if first, dup := seen[c.ID]; dup {
				issues = append(issues, domain.Issue{
					Line:       line,
					CampaignID: strings.TrimSpace(row[0]),
					Column:     domain.FieldCampaignID,
					Reason:     fmt.Sprintf("duplicate campaign_id, first seen on line %d", first),
					Rejected:   true,
				})
				c = nil
			} else {
				seen[c.ID] = line
			}
		}
		ds.Issues = append(ds.Issues, issues...)
		if c != nil {
			ds.Campaigns = append(ds.Campaigns, *c)
		}
	}
	return ds, nil
}

func checkHeader(header []string) error {
	for i, want := range domain.Columns {
		if i >= len(header) {
			return &HeaderError{Position: i, Want: want}
		}
		got := normalizeHeader(header[i])
		if got != string(want) {
			return &HeaderError{Position: i, Got: header[i], Want: want}
		}
	}
	if len(header) > len(domain.Columns) {
		return &HeaderError{Position: len(domain.Columns), Got: header[len(domain.Columns)]}
	}
	return nil
}

// normalizeHeader maps "Campaign_ID", "Campaign ID" and "campaign-id" to
// campaign_id. A UTF-8 byte order mark is dropped.
func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	return strings.ReplaceAll(h, "-", "_")
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// rowParser collects the issues of one row while its cells are parsed.
type rowParser struct {
	line   int
	id     string
	issues []domain.Issue
}

func (p *rowParser) reject(col domain.Field, format string, args ...any) {
	p.issues = append(p.issues, domain.Issue{
		Line: p.line, CampaignID: p.id, Column: col,
		Reason: fmt.Sprintf(format, args...), Rejected: true,
	})
}

func (p *rowParser) flag(col domain.Field, format string, args ...any) {
	p.issues = append(p.issues, domain.Issue{
		Line: p.line, CampaignID: p.id, Column: col,
		Reason: fmt.Sprintf(format, args...),
	})
}

func (p *rowParser) text(cell string) string {
	return strings.TrimSpace(cell)
}

func (p *rowParser) integer(col domain.Field, cell string) int64 {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.reject(col, "not an integer: %q", cell)
	}
	return n
}

func (p *rowParser) count(col domain.Field, cell string) int64 {
	n := p.integer(col, cell)
	if n < 0 {
		p.reject(col, "must not be negative: %d", n)
	}
	return n
}

func (p *rowParser) number(col domain.Field, cell string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(cell))
	if err != nil {
		p.reject(col, "not a number: %q", cell)
	}
	return d
}

func (p *rowParser) money(col domain.Field, cell string) decimal.Decimal {
	d, err := ParseMoney(cell)
	if err != nil {
		p.reject(col, "%v", err)
		return d
	}
	if d.IsNegative() {
		p.reject(col, "must not be negative: %s", d)
	}
	return d
}

func (p *rowParser) date(col domain.Field, cell string) time.Time {
	t, err := ParseDate(cell)
	if err != nil {
		p.reject(col, "%v", err)
	}
	return t
}

// parseRow returns nil when the row was rejected.
func parseRow(row []string, line int) (*domain.Campaign, []domain.Issue) {
	p := &rowParser{line: line}
	if len(row) != len(domain.Columns) {
		if len(row) > 0 {
			p.id = strings.TrimSpace(row[0])
		}
		p.reject("", "expected %d columns, got %d", len(domain.Columns), len(row))
		return nil, p.issues
	}
	p.id = strings.TrimSpace(row[0])

	var c domain.Campaign
	id, err := strconv.ParseInt(p.id, 10, 64)
	switch {
	case p.id == "":
		p.reject(domain.FieldCampaignID, "campaign_id is empty")
	case err != nil:
		p.reject(domain.FieldCampaignID, "not an integer: %q", p.id)
	}
	c.ID = id
	c.Company = p.text(row[1])
	c.CampaignType = p.text(row[2])
	c.TargetAudience = p.text(row[3])
	c.Duration = p.text(row[4])
	c.ChannelUsed = p.text(row[5])
	c.ConversionRate = p.number(domain.FieldConversionRate, row[6])
	c.AcquisitionCost = p.money(domain.FieldAcquisitionCost, row[7])
	c.ROI = p.number(domain.FieldROI, row[8])
	c.Location = p.text(row[9])
	c.Date = p.date(domain.FieldDate, row[10])
	c.Clicks = p.count(domain.FieldClicks, row[11])
	c.Impressions = p.count(domain.FieldImpressions, row[12])
	c.EngagementScore = p.integer(domain.FieldEngagementScore, row[13])
	c.CustomerSegment = p.text(row[14])

	for _, is := range p.issues {
		if is.Rejected {
			return nil, p.issues
		}
	}

	if c.Clicks > c.Impressions {
		p.flag(domain.FieldClicks, "clicks %d exceed impressions %d", c.Clicks, c.Impressions)
	}
	if c.ConversionRate.IsNegative() || c.ConversionRate.GreaterThan(decimal.NewFromInt(1)) {
		p.flag(domain.FieldConversionRate, "conversion_rate %s outside [0,1]", c.ConversionRate)
	}
	return &c, p.issues
}

// moneyPattern accepts an optional sign, one currency symbol before or
// after the amount and thousands separators between groups of three
// digits: "$16,174.00", "-$3", "1 234.5", "100€".
var moneyPattern = regexp.MustCompile(`^(-?)([$€£¥]?)(-?)\s*(\d{1,3}(?:([,\x{00a0} ])\d{3})(?:[,\x{00a0} ]\d{3})*|\d+)(\.\d+)?\s*([$€£¥]?)$`)

// ParseMoney strips a currency symbol and thousands separators from an
// amount such as "$16,174.00". Accounting parentheses mark a negative
// amount. Separators must sit between digit groups and one separator
// kind is used throughout, so "5$5" and "1 2 3" are errors.
func ParseMoney(s string) (decimal.Decimal, error) {
	raw := s
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	m := moneyPattern.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, fmt.Errorf("not a currency amount: %q", raw)
	}
	sign1, lead, sign2, digits, sep, frac, trail := m[1], m[2], m[3], m[4], m[5], m[6], m[7]
	if (sign1 != "" && sign2 != "") || (lead != "" && trail != "") || (sign2 != "" && lead == "") {
		return decimal.Zero, fmt.Errorf("not a currency amount: %q", raw)
	}
	if sep != "" {
		for _, r := range digits {
			if (r < '0' || r > '9') && string(r) != sep {
				return decimal.Zero, fmt.Errorf("mixed thousands separators: %q", raw)
			}
		}
		digits = strings.ReplaceAll(digits, sep, "")
	}

	d, err := decimal.NewFromString(digits + frac)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a currency amount: %q", raw)
	}
	if sign1 != "" || sign2 != "" {
		d = d.Neg()
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}

// ParseDate parses a day-before-month date. 13/01/2021 is 13 January and
// 01/13/2021 is an error, never 13 January.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not a day-month-year date: %q", s)
}
