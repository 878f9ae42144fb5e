package cssdrift

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name         string
		template     []string
		css          []string
		ignore       []string
		wantCSSSide  []string
		wantTmplSide []string
	}{
		{
			name:         "basic asymmetric difference",
			template:     []string{"foo", "bar"},
			css:          []string{"bar", "baz"},
			wantCSSSide:  []string{"baz"},
			wantTmplSide: []string{"foo"},
		},
		{
			name:         "identical sets",
			template:     []string{"a", "b"},
			css:          []string{"a", "b"},
			wantCSSSide:  []string{},
			wantTmplSide: []string{},
		},
		{
			name:         "ignore suppresses both directions",
			template:     []string{"used", "js-trigger"},
			css:          []string{"used", "js-modal"},
			ignore:       []string{"^js-"},
			wantCSSSide:  []string{},
			wantTmplSide: []string{},
		},
		{
			name:         "ignore only affects matching names",
			template:     []string{"js-hook", "orphan"},
			css:          []string{"unused"},
			ignore:       []string{"^js-"},
			wantCSSSide:  []string{"unused"},
			wantTmplSide: []string{"orphan"},
		},
		{
			name:         "first matching pattern wins",
			template:     []string{"u-hidden"},
			css:          []string{},
			ignore:       []string{"^u-", "^u-hidden$"},
			wantCSSSide:  []string{},
			wantTmplSide: []string{},
		},
		{
			name:         "empty inputs",
			template:     nil,
			css:          nil,
			wantCSSSide:  []string{},
			wantTmplSide: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ignore, err := CompileIgnorePatterns(tt.ignore)
			require.NoError(t, err)

			report := Diff(NewClassSet(tt.template...), NewClassSet(tt.css...), ignore)
			assert.Equal(t, tt.wantCSSSide, report.CSSClassesNotFoundInTemplates)
			assert.Equal(t, tt.wantTmplSide, report.TemplateClassesNotFoundInCSS)
		})
	}
}

func TestDiff_OutputFollowsSourceSetOrder(t *testing.T) {
	template := NewClassSet("z", "a", "m")
	css := NewClassSet("q", "b", "k")

	report := Diff(template, css, nil)
	assert.Equal(t, []string{"q", "b", "k"}, report.CSSClassesNotFoundInTemplates)
	assert.Equal(t, []string{"z", "a", "m"}, report.TemplateClassesNotFoundInCSS)
}

func TestDiff_SharedClassesNeverAppearInEitherList(t *testing.T) {
	template := NewClassSet("shared-a", "shared-b", "tmpl-only")
	css := NewClassSet("shared-b", "shared-a", "css-only")

	report := Diff(template, css, nil)
	for _, shared := range []string{"shared-a", "shared-b"} {
		assert.NotContains(t, report.CSSClassesNotFoundInTemplates, shared)
		assert.NotContains(t, report.TemplateClassesNotFoundInCSS, shared)
	}
	assert.Equal(t, []string{"css-only"}, report.CSSClassesNotFoundInTemplates)
	assert.Equal(t, []string{"tmpl-only"}, report.TemplateClassesNotFoundInCSS)
}

func TestDiff_DoesNotMutateInputs(t *testing.T) {
	template := NewClassSet("a")
	css := NewClassSet("b")
	ignore := []*regexp.Regexp{regexp.MustCompile("^js-")}

	_ = Diff(template, css, ignore)
	assert.Equal(t, []string{"a"}, template.Values())
	assert.Equal(t, []string{"b"}, css.Values())
}

func TestCompileIgnorePatterns_Invalid(t *testing.T) {
	_, err := CompileIgnorePatterns([]string{"["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ignore pattern")
}
