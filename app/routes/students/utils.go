package students

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"epic-gym-system/app/models"
)

// BuildScheduleKey canonicalizes a weekly schedule into a deduplication key:
// the sorted day:start:end triples joined with "|". Two students submitting
// the same slots in any order produce the same key and land in one group.
func BuildScheduleKey(slots []*models.ScheduleSlot) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, fmt.Sprintf("%s:%s:%s",
			strings.ToLower(strings.TrimSpace(s.Day)),
			strings.TrimSpace(s.StartTime),
			strings.TrimSpace(s.EndTime)))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// GroupNameFromSlots builds a human-readable group name from its slots.
func GroupNameFromSlots(slots []*models.ScheduleSlot) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		day := strings.ToLower(strings.TrimSpace(s.Day))
		if len(day) >= 3 {
			day = strings.ToUpper(day[:1]) + day[1:3]
		}
		parts = append(parts, fmt.Sprintf("%s %s-%s", day, s.StartTime, s.EndTime))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

// ValidateTimeFormat validates a 24-hour HH:MM string. Zero-padding is
// required: schedule keys compare these values textually, so "9:00" and
// "09:00" must not both be accepted.
func ValidateTimeFormat(timeStr string) bool {
	if len(timeStr) != 5 || timeStr[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if timeStr[i] < '0' || timeStr[i] > '9' {
			return false
		}
	}
	hour := int(timeStr[0]-'0')*10 + int(timeStr[1]-'0')
	minute := int(timeStr[3]-'0')*10 + int(timeStr[4]-'0')
	return hour <= 23 && minute <= 59
}

// ValidateDayOfWeek validates day of week
func ValidateDayOfWeek(day string) bool {
	validDays := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	day = strings.ToLower(day)
	for _, validDay := range validDays {
		if day == validDay {
			return true
		}
	}
	return false
}

// SubscriptionExpiry computes when a plan started on start and lasting
// planMonths calendar months runs out.
func SubscriptionExpiry(start time.Time, planMonths int) time.Time {
	if planMonths < 1 {
		planMonths = 1
	}
	return start.AddDate(0, planMonths, 0)
}

// RenewalExpiry extends a subscription by months. A renewal before the
// current expiry extends from it; a lapsed subscription restarts from now.
func RenewalExpiry(currentExpiry time.Time, months int, now time.Time) time.Time {
	base := currentExpiry
	if base.Before(now) {
		base = now
	}
	return SubscriptionExpiry(base, months)
}
