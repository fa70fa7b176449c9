package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dto-pump/internal/record"
	"dto-pump/internal/schema"
)

const (
	MinCount     = 1
	MaxCount     = 100000
	PreviewCount = 10

	defaultNullablePercent = 10
	defaultMaxLength       = 50
	defaultMaxNumber       = 1000
	defaultArrayMax        = 5
)

var ErrInvalidCount = errors.New("record count out of range")

// ValidateCount checks a requested record count against [MinCount, MaxCount].
func ValidateCount(count int) error {
	if count < MinCount || count > MaxCount {
		return fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidCount, count, MinCount, MaxCount)
	}
	return nil
}

// EffectiveCount caps count at PreviewCount when a preview is requested.
func EffectiveCount(count int, preview bool) int {
	if preview && count > PreviewCount {
		return PreviewCount
	}
	return count
}

// Options configure a Generator.
type Options struct {
	Seed   int64 // 0 picks a time based seed
	Locale Locale
	// NullablePercent is used for nullable fields without their own setting.
	// nil means the default of 10; 0 turns nulls off.
	NullablePercent *int
}

// Generator produces random records from field configurations.
// A Generator is not safe for concurrent use.
type Generator struct {
	faker   *gofakeit.Faker
	locale  Locale
	nullPct int
	now     time.Time
	warned  map[string]bool
}

func NewGenerator(opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	nullPct := defaultNullablePercent
	if opts.NullablePercent != nil {
		nullPct = min(max(*opts.NullablePercent, 0), 100)
	}
	locale := opts.Locale
	if locale == "" {
		locale = LocaleEN
	}
	return &Generator{
		faker:   gofakeit.New(seed),
		locale:  locale,
		nullPct: nullPct,
		now:     time.Now(),
		warned:  make(map[string]bool),
	}
}

// Records generates count records. onProgress, when set, is called once per record.
func (g *Generator) Records(fields []schema.FieldConfig, count int, onProgress func()) ([]*record.Record, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}

	out := make([]*record.Record, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.Record(fields))
		if onProgress != nil {
			onProgress()
		}
	}
	return out, nil
}

// Record generates one record with a value for every field, in field order.
func (g *Generator) Record(fields []schema.FieldConfig) *record.Record {
	rec := record.New()
	for _, f := range fields {
		rec.Set(f.Name, g.Value(f))
	}
	return rec
}

// Value generates a value for a single field.
func (g *Generator) Value(f schema.FieldConfig) any {
	if f.Nullable && g.faker.Number(1, 100) <= g.nullablePercent(f) {
		return nil
	}

	switch f.Type {
	case schema.TypeString:
		return g.stringValue(f)
	case schema.TypeNumber:
		return g.numberValue(f)
	case schema.TypeBoolean:
		return g.faker.Bool()
	case schema.TypeEnum:
		if len(f.EnumValues) > 0 {
			return g.faker.RandomString(f.EnumValues)
		}
		return g.faker.Word()
	case schema.TypeArray:
		return g.arrayValue(f)
	case schema.TypeObject:
		return g.Record(f.NestedFields)
	}
	return truncate(g.semantic(f.Type), f.MaxLength)
}

func (g *Generator) nullablePercent(f schema.FieldConfig) int {
	if f.NullablePercent != nil {
		return *f.NullablePercent
	}
	return g.nullPct
}

func (g *Generator) stringValue(f schema.FieldConfig) string {
	switch {
	case f.FakerTemplate != "":
		return truncate(g.faker.Generate(f.FakerTemplate), f.MaxLength)
	case f.Pattern != "":
		return g.faker.Regex(f.Pattern)
	}
	if t := AnalyzeMeaning(f.Name, f.Hint); t != "" {
		return truncate(g.semantic(t), f.MaxLength)
	}
	return g.text(f)
}

// text builds filler text whose length lies within the field's bounds.
func (g *Generator) text(f schema.FieldConfig) string {
	minLen, maxLen := 1, defaultMaxLength
	if f.MinLength != nil {
		minLen = max(*f.MinLength, 0)
	}
	if f.MaxLength != nil {
		maxLen = *f.MaxLength
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	target := g.faker.Number(minLen, maxLen)

	var b strings.Builder
	for utf8.RuneCountInString(b.String()) < target {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if g.locale == LocaleKO {
			b.WriteString(g.pick(koWords))
		} else {
			b.WriteString(g.faker.Word())
		}
	}

	s := strings.TrimRight(string([]rune(b.String())[:target]), " ")
	for utf8.RuneCountInString(s) < minLen {
		s += g.faker.Letter()
	}
	return s
}

func (g *Generator) numberValue(f schema.FieldConfig) any {
	lo, hi := 0.0, float64(defaultMaxNumber)
	if f.Min != nil {
		lo = *f.Min
	}
	if f.Max != nil {
		hi = *f.Max
	}
	if hi < lo {
		hi = lo
	}

	precision := 0
	if f.Precision != nil {
		precision = *f.Precision
	}
	if precision <= 0 {
		l, h := toInt(math.Ceil(lo)), toInt(math.Floor(hi))
		if h < l {
			return l
		}
		return g.faker.Number(l, h)
	}

	scale := math.Pow(10, float64(precision))
	return math.Round(g.faker.Float64Range(lo, hi)*scale) / scale
}

// toInt saturates at the int range instead of wrapping.
func toInt(f float64) int {
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

func (g *Generator) arrayValue(f schema.FieldConfig) []any {
	lo, hi := 1, defaultArrayMax
	if f.ArrayMinLength != nil {
		lo = max(*f.ArrayMinLength, 0)
	}
	if f.ArrayMaxLength != nil {
		hi = *f.ArrayMaxLength
	}
	if hi < lo {
		hi = lo
	}

	items := []any{}
	if f.ArrayItemConfig == nil {
		if !g.warned[f.Name] {
			g.warned[f.Name] = true
			logrus.WithField("field", f.Name).Warn("array field has no item configuration, generating empty arrays")
		}
		return items
	}

	n := g.faker.Number(lo, hi)
	for i := 0; i < n; i++ {
		items = append(items, g.Value(*f.ArrayItemConfig))
	}
	return items
}

// semantic generates a value for the string-like field types.
func (g *Generator) semantic(t schema.FieldType) string {
	ko := g.locale == LocaleKO

	switch t {
	case schema.TypeEmail:
		return g.faker.Email()
	case schema.TypeUUID:
		return g.uuid()
	case schema.TypePhone:
		if ko {
			return g.koreanPhone()
		}
		return g.faker.Phone()
	case schema.TypeURL:
		return g.faker.URL()
	case schema.TypeDate:
		return g.faker.DateRange(g.now.AddDate(-1, 0, 0), g.now).Format("2006-01-02")
	case schema.TypeFirstName:
		if ko {
			return g.pick(koFirstNames)
		}
		return g.faker.FirstName()
	case schema.TypeLastName:
		if ko {
			return g.pick(koLastNames)
		}
		return g.faker.LastName()
	case schema.TypeFullName:
		if ko {
			return g.koreanName()
		}
		return g.faker.Name()
	case schema.TypeAddress:
		if ko {
			return g.koreanAddress()
		}
		return g.faker.Address().Address
	case schema.TypeCity:
		if ko {
			return g.pick(koCities)
		}
		return g.faker.City()
	case schema.TypeCountry:
		if ko {
			return "대한민국"
		}
		return g.faker.Country()
	case schema.TypeZipCode:
		if ko {
			return fmt.Sprintf("%05d", g.faker.Number(0, 99999))
		}
		return g.faker.Zip()
	case schema.TypeCompany:
		if ko {
			return g.pick(koCompanies) + "(주)"
		}
		return g.faker.Company()
	case schema.TypeLorem:
		if ko {
			return g.koreanText(8)
		}
		return g.faker.LoremIpsumSentence(8)
	}
	return g.faker.Word()
}

// uuid draws from the faker's source so seeded runs repeat.
func (g *Generator) uuid() string {
	id, err := uuid.NewRandomFromReader(g.faker.Rand)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func truncate(s string, limit *int) string {
	if limit == nil || *limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > *limit {
		return string(runes[:*limit])
	}
	return s
}
