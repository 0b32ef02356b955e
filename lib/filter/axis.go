// Copyright 2026 The ApkForge Authors
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/apkforge/apkforge/lib/restable"
)

// LocaleFilter is the table splitter's generic configuration filter
// for a locale group. Values with no locale qualifier always match:
// they are the fallback every locale resolves to.
type LocaleFilter struct {
	tags []language.Tag
}

// NewLocale builds a filter from locale qualifiers ("en", "es-ES").
// Qualifiers are canonicalized with x/text, so "es-es" and "es-ES"
// are the same filter entry.
func NewLocale(locales []string) (*LocaleFilter, error) {
	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale qualifier %q: %w", locale, err)
		}
		tags = append(tags, tag)
	}
	return &LocaleFilter{tags: tags}, nil
}

// Match implements restable.ConfigFilter. A locale-qualified value
// matches when its base language equals a filter entry's and that
// entry either names no region or the same region. A filter entry
// with a region ("es-ES") therefore matches only that region, while a
// bare language ("es") matches every regional variant.
func (f *LocaleFilter) Match(config restable.Config) bool {
	if config.Locale == "" {
		return true
	}
	valueTag, err := language.Parse(config.Locale)
	if err != nil {
		// Unparseable qualifiers on values are left alone rather than
		// silently stripped.
		return true
	}
	valueBase, _, valueRegion := valueTag.Raw()

	for _, tag := range f.tags {
		base, _, region := tag.Raw()
		if base != valueBase {
			continue
		}
		// A raw region of ZZ means the qualifier named no region.
		if region.String() == "ZZ" || region == valueRegion {
			return true
		}
	}
	return false
}
