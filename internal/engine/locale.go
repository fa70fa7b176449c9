package engine

import (
	"fmt"
	"strings"
)

// Locale selects the word lists used for semantic values.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleKO Locale = "ko"
)

// ParseLocale accepts "en" or "ko"; empty means "en".
func ParseLocale(s string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(s))); l {
	case "", LocaleEN:
		return LocaleEN, nil
	case LocaleKO:
		return l, nil
	}
	return "", fmt.Errorf("unsupported locale %q (expected en or ko)", s)
}

var (
	koLastNames  = []string{"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임", "한", "오", "서", "신", "권", "황", "안", "송", "류", "전"}
	koFirstNames = []string{"민준", "서준", "도윤", "예준", "시우", "하준", "지호", "주원", "지우", "준우", "서연", "서윤", "서현", "하은", "민서", "지유", "윤서", "채원"}
	koCities     = []string{"서울", "부산", "대구", "인천", "광주", "대전", "울산", "수원", "성남", "고양", "용인", "부천", "안산", "청주", "전주", "천안", "남양주", "화성", "안양", "김해"}
	koDistricts  = []string{"강남구", "서초구", "송파구", "종로구", "마포구", "영등포구", "관악구", "동작구", "강동구", "노원구", "은평구", "서대문구", "성북구", "동대문구", "중랑구"}
	koStreets    = []string{"테헤란로", "강남대로", "송파대로", "올림픽로", "한강대로", "세종대로", "을지로", "퇴계로", "충무로", "종로", "신촌로", "양화로", "경인로", "시흥대로", "남부순환로"}
	koCompanies  = []string{"한빛", "새롬", "누리", "다온", "미래", "가온", "온새미", "한결", "바른", "푸른"}
	koWords      = []string{
		"영화", "이야기", "인생", "시간", "세계", "친구", "사랑", "평화", "희망", "꿈",
		"운명", "기억", "진실", "비밀", "전설", "미래", "과거", "여정", "자유", "약속",
		"기적", "도시", "마을", "바다", "산", "하늘", "별", "태양", "달", "숲",
		"아름다운", "위대한", "행복한", "조용한", "빠른", "강한", "현명한", "놀라운", "완벽한", "새로운",
	}
)

func (g *Generator) pick(items []string) string {
	return items[g.faker.Number(0, len(items)-1)]
}

func (g *Generator) koreanName() string {
	return g.pick(koLastNames) + g.pick(koFirstNames)
}

func (g *Generator) koreanAddress() string {
	return fmt.Sprintf("%s %s %s %d번길", g.pick(koCities), g.pick(koDistricts), g.pick(koStreets), g.faker.Number(1, 100))
}

func (g *Generator) koreanPhone() string {
	return fmt.Sprintf("010-%04d-%04d", g.faker.Number(0, 9999), g.faker.Number(0, 9999))
}

func (g *Generator) koreanText(wordCount int) string {
	ws := make([]string, wordCount)
	for i := range ws {
		ws[i] = g.pick(koWords)
	}
	return strings.Join(ws, " ")
}
