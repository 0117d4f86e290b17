package i18n

import (
	"strings"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Locale string

const (
	EN Locale = "en"
	DE Locale = "de"
	FR Locale = "fr"
)

var supported = []Locale{EN, DE, FR}

// 価格の通貨記号（カタログはルーブル建て）
const currencySymbol = "₽"

func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// "de", "DE", " fr " を受け付ける
func ParseLocale(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, s := range supported {
		if s == l {
			return l, true
		}
	}
	return "", false
}

// 文言の引き当て。無い言語はdefaultへ、無いキーはキーそのものを返す。
type Translator struct {
	fallback Locale
	matcher  language.Matcher
	tags     []Locale
	printers map[Locale]*message.Printer
}

// DI
func NewTranslator(fallback Locale) *Translator {
	if _, ok := ParseLocale(string(fallback)); !ok {
		fallback = EN
	}

	// Matcherは先頭をフォールバックに使う
	order := []Locale{fallback}
	for _, l := range supported {
		if l != fallback {
			order = append(order, l)
		}
	}
	tags := make([]language.Tag, 0, len(order))
	printers := make(map[Locale]*message.Printer, len(order))
	for _, l := range order {
		tag := language.Make(string(l))
		tags = append(tags, tag)
		printers[l] = message.NewPrinter(tag)
	}

	return &Translator{
		fallback: fallback,
		matcher:  language.NewMatcher(tags),
		tags:     order,
		printers: printers,
	}
}

func (t *Translator) Default() Locale {
	return t.fallback
}

func (t *Translator) T(l Locale, key string) string {
	e, ok := messages[key]
	if !ok {
		return key
	}
	return t.pick(e, l, key)
}

// Messages はその言語の文言表（フロントにまとめて渡す用）
func (t *Translator) Messages(l Locale) map[string]string {
	out := make(map[string]string, len(messages))
	for k, e := range messages {
		out[k] = t.pick(e, l, k)
	}
	return out
}

// 商品名・説明を翻訳する。翻訳が無ければカタログの値のまま。
func (t *Translator) Product(l Locale, p model.Product) model.Product {
	pe, ok := productMessages[p.ID]
	if !ok {
		return p
	}
	p.Name = t.pick(pe.Name, l, p.Name)
	p.Description = t.pick(pe.Description, l, p.Description)
	p.FullDescription = t.pick(pe.FullDescription, l, p.FullDescription)
	return p
}

// Accept-Language から対応言語を選ぶ
func (t *Translator) Negotiate(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return t.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(t.tags) {
		return t.fallback
	}
	return t.tags[idx]
}

// 整数なら小数なし、端数があれば2桁で表示
func (t *Translator) FormatPrice(l Locale, amount decimal.Decimal) string {
	p, ok := t.printers[l]
	if !ok {
		p = t.printers[t.fallback]
	}

	if amount.IsInteger() {
		return p.Sprintf("%d", amount.IntPart()) + " " + currencySymbol
	}
	f, _ := amount.Round(2).Float64()
	return p.Sprintf("%.2f", f) + " " + currencySymbol
}

func (t *Translator) pick(e entry, l Locale, def string) string {
	if v, ok := e[l]; ok && v != "" {
		return v
	}
	if v, ok := e[t.fallback]; ok && v != "" {
		return v
	}
	return def
}
