package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
)

// sharedAnswer covers the self-scope, functional, and conversational intents
// common to every authenticated family.
func (r *Router) sharedAnswer(ctx context.Context, id Identity, classified domain.Intent, text string) (Reply, error) {
	switch classified {
	case domain.IntentMyProfile:
		p, err := r.profiles.FetchProfile(ctx, id.UserKey)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf(
			"Your profile\nName: %s\nProgram: %s (Class of %d)\nLocation: %s, %s\nEngagements: %s\nMentorship hours: %.1f",
			p.DisplayName, p.ProgramName, p.GraduationYear, p.City, p.State,
			formatCount(p.EngagementCount), p.MentorshipHours)}, nil

	case domain.IntentMyEngagement:
		p, err := r.profiles.FetchProfile(ctx, id.UserKey)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf(
			"You have %s recorded engagements and %.1f mentorship hours. Keep it up!",
			formatCount(p.EngagementCount), p.MentorshipHours)}, nil

	case domain.IntentMyColleagues:
		colleagues, err := r.profiles.FetchColleagues(ctx, id.UserKey)
		if err != nil {
			return Reply{}, err
		}
		if len(colleagues) == 0 {
			return Reply{Text: "No colleagues found on your network yet."}, nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Your network (%s people)", formatCount(len(colleagues)))
		for _, c := range colleagues {
			fmt.Fprintf(&b, "\n- %s, %s at %s", c.DisplayName, c.ProgramName, c.CompanyName)
		}
		return Reply{Text: b.String()}, nil

	case domain.IntentMySubmissions:
		return r.submissionsAnswer(ctx, id, "")

	case domain.IntentUpcomingEvents:
		events, err := r.events.UpcomingEvents(ctx, r.now())
		if err != nil {
			return Reply{}, err
		}
		if len(events) == 0 {
			return Reply{Text: "No upcoming events are scheduled right now."}, nil
		}
		var b strings.Builder
		b.WriteString("Upcoming events")
		for _, e := range events {
			fmt.Fprintf(&b, "\n- %s (%s)", e.EventName, e.EventType)
		}
		return Reply{Text: b.String()}, nil

	case domain.IntentApplyEvent:
		s, err := r.subs.SubmitEventApplication(ctx, id.UserKey, strings.TrimSpace(text))
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("Your event application has been submitted (reference %s). You'll hear back once it's reviewed.", s.ID)}, nil

	case domain.IntentSubmitEngagement:
		s, err := r.subs.SubmitEngagement(ctx, id.UserKey, strings.TrimSpace(text))
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("Engagement recorded (reference %s). Thanks for logging it.", s.ID)}, nil

	case domain.IntentShareStory:
		s, err := r.subs.SubmitSuccessStory(ctx, id.UserKey, strings.TrimSpace(text))
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("Your story has been submitted (reference %s). The alumni team will review it shortly.", s.ID)}, nil

	case domain.IntentSubmitFeedback:
		s, err := r.subs.SubmitFeedback(ctx, id.UserKey, strings.TrimSpace(text))
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("Feedback received (reference %s). Thank you.", s.ID)}, nil

	case domain.IntentRequestParticipation:
		s, err := r.subs.RequestEventParticipation(ctx, id.UserKey, strings.TrimSpace(text))
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("Participation request sent (reference %s).", s.ID)}, nil

	case domain.IntentUpdateProfile:
		return Reply{Text: "Taking you to your profile editor.", Route: "/profile/edit"}, nil

	case domain.IntentNavigate:
		route := routeFor(text)
		return Reply{Text: fmt.Sprintf("Taking you to %s.", route), Route: route}, nil

	case domain.IntentGreeting:
		return Reply{Text: greetingResponse}, nil

	case domain.IntentHelp:
		return Reply{Text: helpText(id.Role)}, nil

	default:
		return Reply{Text: generalResponse}, nil
	}
}

// submissionsAnswer lists the caller's submissions, optionally filtered to a
// single kind.
func (r *Router) submissionsAnswer(ctx context.Context, id Identity, kind string) (Reply, error) {
	subs, err := r.profiles.FetchSubmissions(ctx, id.UserKey)
	if err != nil {
		return Reply{}, err
	}
	var filtered []domain.Submission
	for _, s := range subs {
		if kind == "" || s.Kind == kind {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) == 0 {
		return Reply{Text: "You have no submissions on record."}, nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Your submissions (%s)", formatCount(len(filtered)))
	for _, s := range filtered {
		fmt.Fprintf(&b, "\n- [%s] %s (%s)", s.Status, s.Title, s.Kind)
	}
	return Reply{Text: b.String()}, nil
}

// routeFor maps navigation phrasing to a portal route. Unrecognized targets
// land on home.
func routeFor(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "dashboard"):
		return "/dashboard"
	case strings.Contains(lower, "analytics"):
		return "/analytics"
	case strings.Contains(lower, "event"):
		return "/events"
	case strings.Contains(lower, "profile"):
		return "/profile"
	case strings.Contains(lower, "alumni"), strings.Contains(lower, "directory"):
		return "/alumni"
	}
	return "/home"
}

func helpText(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "You can ask about totals and engagement rates, top programs, cohorts and locations, monthly trends, the hiring funnel, employer rankings, predictive matches, and verification status. You can also manage your own profile and submissions."
	case domain.RoleAlumni:
		return "You can view your profile, engagements, colleagues, and submissions; browse upcoming events; apply to events; log engagements; and share a success story."
	case domain.RoleEmployer:
		return "You can view your company's alumni, your event participation, and your submissions; request event participation; and leave feedback about candidates."
	default:
		return loginMessage
	}
}
