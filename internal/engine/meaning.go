package engine

import (
	"strings"
	"unicode"

	"dto-pump/internal/schema"
)

var abbreviations = map[string]string{
	// nouns
	"nm": "name", "fname": "first", "lname": "last", "dt": "date", "no": "number",
	"desc": "description", "addr": "address", "tel": "phone", "hp": "phone", "ph": "phone",
	"mob": "mobile", "biz": "business", "corp": "company", "co": "company", "org": "company",
	"img": "image", "url": "url", "uri": "url", "href": "url", "site": "url", "web": "url",
	"zip": "zipcode", "post": "zipcode", "postcode": "zipcode",
	"msg": "message", "txt": "text", "tit": "title", "subj": "subject", "cmt": "comment",
	"usr": "user", "emp": "employee", "cust": "customer",
	"st": "street", "cty": "city", "ctry": "country", "nat": "country",
	"mail": "email", "eml": "email",
}

// AnalyzeMeaning guesses a semantic field type from a field name and its
// free-text hint. The hint wins over the name. It returns "" when nothing
// specific is recognised.
func AnalyzeMeaning(name, hint string) schema.FieldType {
	if t := meaningOf(words(hint)); t != "" {
		return t
	}
	h := strings.ToLower(hint)
	switch {
	case strings.Contains(h, "전화") || strings.Contains(h, "휴대폰") || strings.Contains(h, "연락처"):
		return schema.TypePhone
	case strings.Contains(h, "이메일") || strings.Contains(h, "메일"):
		return schema.TypeEmail
	case strings.Contains(h, "주소") || strings.Contains(h, "거주지"):
		return schema.TypeAddress
	case strings.Contains(h, "우편"):
		return schema.TypeZipCode
	case strings.Contains(h, "이름") || strings.Contains(h, "성명"):
		return schema.TypeFullName
	case strings.Contains(h, "국가") || strings.Contains(h, "나라"):
		return schema.TypeCountry
	case strings.Contains(h, "도시"):
		return schema.TypeCity
	case strings.Contains(h, "회사"):
		return schema.TypeCompany
	case strings.Contains(h, "내용") || strings.Contains(h, "설명") || strings.Contains(h, "제목"):
		return schema.TypeLorem
	}

	decoded := words(name)
	for i, w := range decoded {
		if full, ok := abbreviations[w]; ok {
			decoded[i] = full
		}
	}
	return meaningOf(decoded)
}

func meaningOf(ws []string) schema.FieldType {
	has := make(map[string]bool, len(ws))
	for _, w := range ws {
		has[w] = true
	}

	switch {
	case has["email"]:
		return schema.TypeEmail
	case has["phone"] || has["mobile"] || has["cellphone"]:
		return schema.TypePhone
	case has["url"] || has["website"] || has["link"] || has["homepage"]:
		return schema.TypeURL
	case has["zipcode"] || has["postal"]:
		return schema.TypeZipCode
	case has["company"] || has["business"] || has["employer"]:
		return schema.TypeCompany
	case has["first"] && (has["name"] || len(ws) == 1), has["firstname"], has["given"]:
		return schema.TypeFirstName
	case has["last"] && (has["name"] || len(ws) == 1), has["lastname"], has["surname"], has["family"]:
		return schema.TypeLastName
	case has["fullname"], has["name"] && !has["user"] && !has["file"] && !has["display"]:
		return schema.TypeFullName
	case has["address"] || has["street"]:
		return schema.TypeAddress
	case has["city"] || has["town"]:
		return schema.TypeCity
	case has["country"]:
		return schema.TypeCountry
	case has["description"] || has["comment"] || has["message"] || has["text"] ||
		has["title"] || has["subject"] || has["summary"] || has["bio"]:
		return schema.TypeLorem
	}
	return ""
}

// words splits snake_case, kebab-case, camelCase and spaced text into
// lower-case words.
func words(s string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) ||
			(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return out
}
