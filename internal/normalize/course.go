// Package normalize turns possibly inconsistent course rows from the upstream
// database into the canonical shapes the rest of the service renders from.
//
// Every function here is a pure, total transform: missing, null or wrongly
// typed fields degrade to documented defaults instead of producing an error.
// Rendering must never break on partial backend data, so there is exactly one
// "empty" outcome: a response that carries no course at all, signalled with
// nil rather than an error.
package normalize

import (
	"math"
	"sort"
	"strings"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/model"
)

const (
	defaultTitleEN = "Module"
	defaultTitleES = "Modulo"

	defaultDifficulty  = "beginner"
	defaultContentType = "article"

	maxObjectiveFallbacks = 6
)

var difficulties = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

var contentTypes = map[string]bool{
	"video":       true,
	"article":     true,
	"quiz":        true,
	"interactive": true,
}

// CourseResponse is the query envelope the upstream client hands back: Data is
// nil when the course does not exist.
type CourseResponse struct {
	Data *model.RawCourse `json:"data"`
}

// NormalizeCourseResponse unwraps a course query envelope. A nil response or a
// response without data yields nil; everything else normalizes.
func NormalizeCourseResponse(resp *CourseResponse) *model.Course {
	if resp == nil || resp.Data == nil {
		return nil
	}
	c := NormalizeCourse(resp.Data)
	return &c
}

// NormalizeCourse produces a canonical course from a raw row. The input is
// never mutated and the call never fails.
func NormalizeCourse(raw *model.RawCourse) model.Course {
	// Modules first: the course duration fallback sums their durations.
	modules := NormalizeModules(raw.CourseModules)

	difficulty := defaultDifficulty
	if v := strings.ToLower(firstString("", raw.Difficulty, raw.DifficultyLevel)); difficulties[v] {
		difficulty = v
	}

	topics, ok := stringList(raw.Topics)
	if !ok {
		topics = []string{}
	}

	duration, ok := firstPositive(raw.DurationMinutes, raw.TotalDurationMinutes)
	if !ok {
		for _, m := range modules {
			duration += float64(m.DurationMinutes)
		}
	}

	enrollment := 0
	if n, ok := firstNumber(raw.EnrollmentCount, raw.EnrolledCount); ok && n > 0 {
		enrollment = int(n)
	}
	rating := 0.0
	if n, ok := asNumber(raw.RatingAvg); ok && n > 0 {
		rating = n
	}
	views := 0
	if n, ok := asNumber(raw.ViewCount); ok && n > 0 {
		views = int(n)
	}

	objectivesEN, ok := stringList(raw.LearningObjectivesEN)
	if !ok {
		objectivesEN = objectiveFallback(modules, func(m model.Module) string { return m.TitleEN })
	}
	objectivesES, ok := stringList(raw.LearningObjectivesES)
	if !ok {
		objectivesES = objectiveFallback(modules, func(m model.Module) string { return m.TitleES })
	}

	return model.Course{
		ID:                   raw.ID,
		TitleEN:              raw.TitleEN,
		TitleES:              raw.TitleES,
		DescriptionEN:        raw.DescriptionEN,
		DescriptionES:        raw.DescriptionES,
		ImageURL:             raw.ImageURL,
		Difficulty:           difficulty,
		Topics:               topics,
		DurationMinutes:      int(math.Round(duration)),
		EnrollmentCount:      enrollment,
		RatingAvg:            rating,
		ViewCount:            views,
		LearningObjectivesEN: objectivesEN,
		LearningObjectivesES: objectivesES,
		CourseModules:        modules,
	}
}

// NormalizeModules normalizes each raw module independently and returns them
// sorted ascending by order index. Modules without an id are dropped. The sort
// is stable, so modules sharing an order index keep their original relative
// order.
func NormalizeModules(raws []model.RawModule) []model.Module {
	out := make([]model.Module, 0, len(raws))
	for _, rm := range raws {
		id, ok := asString(rm.ID)
		if !ok || strings.TrimSpace(id) == "" {
			continue
		}

		orderIndex := 0
		if n, ok := asNumber(rm.OrderIndex); ok {
			orderIndex = int(n)
		}

		contentEN := ""
		if s, ok := asString(rm.ContentEN); ok {
			contentEN = s
		}
		contentES := ""
		if s, ok := asString(rm.ContentES); ok {
			contentES = s
		}

		duration := 0
		if n, ok := firstNumber(rm.DurationMinutes, rm.EstimatedTime); ok {
			duration = ClampDuration(n)
		} else {
			duration = EstimateDuration(contentEN)
		}

		contentType := defaultContentType
		if v := strings.ToLower(firstString("", rm.ContentType, rm.Type)); contentTypes[v] {
			contentType = v
		}

		isFree := orderIndex == 0
		if b, ok := asBool(rm.IsFree); ok {
			isFree = b
		}

		out = append(out, model.Module{
			ID:              id,
			TitleEN:         firstString(defaultTitleEN, rm.TitleEN, rm.TitleES),
			TitleES:         firstString(defaultTitleES, rm.TitleES, rm.TitleEN),
			ContentEN:       contentEN,
			ContentES:       contentES,
			DescriptionEN:   SummarizeContent(contentEN),
			DescriptionES:   SummarizeContent(contentES),
			OrderIndex:      orderIndex,
			DurationMinutes: duration,
			ContentType:     contentType,
			IsFree:          isFree,
			Resources:       NormalizeResources(rm.Resources),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

// objectiveFallback derives learning objectives from up to six module titles,
// in sorted module order, skipping empties.
func objectiveFallback(modules []model.Module, title func(model.Module) string) []string {
	out := []string{}
	for _, m := range modules {
		if len(out) == maxObjectiveFallbacks {
			break
		}
		if t := strings.TrimSpace(title(m)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
