// Package digest contains the plan digest email use case.
package digest

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coinbag/backend/internal/application/adapter"
	"github.com/coinbag/backend/internal/application/usecase/planner"
	domainerror "github.com/coinbag/backend/internal/domain/error"
)

// SendPlanDigestInput represents the input for sending a plan digest.
type SendPlanDigestInput struct {
	UserID uuid.UUID
}

// SendPlanDigestOutput represents the output of sending a plan digest.
type SendPlanDigestOutput struct {
	Sent       bool
	ProviderID string
}

// planExecutor is the slice of the planner this use case needs.
type planExecutor interface {
	Execute(ctx context.Context, input planner.GetPlanInput) (*planner.GetPlanOutput, error)
}

// SendPlanDigestUseCase emails the user a summary of their current plan:
// the suggested transfers and the remaining surplus. Every sent digest is
// recorded for auditing.
type SendPlanDigestUseCase struct {
	getPlan       planExecutor
	userRepo      adapter.UserRepository
	emailSender   adapter.EmailSender
	digestLogRepo adapter.DigestLogRepository
}

// NewSendPlanDigestUseCase creates a new SendPlanDigestUseCase instance.
func NewSendPlanDigestUseCase(
	getPlan planExecutor,
	userRepo adapter.UserRepository,
	emailSender adapter.EmailSender,
	digestLogRepo adapter.DigestLogRepository,
) *SendPlanDigestUseCase {
	return &SendPlanDigestUseCase{
		getPlan:       getPlan,
		userRepo:      userRepo,
		emailSender:   emailSender,
		digestLogRepo: digestLogRepo,
	}
}

// Execute builds the user's plan and sends it as an email digest. Users who
// disabled digests get a no-op success.
func (uc *SendPlanDigestUseCase) Execute(ctx context.Context, input SendPlanDigestInput) (*SendPlanDigestOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if !user.DigestEnabled {
		slog.Debug("plan digest skipped, disabled by user", "userID", user.ID)
		return &SendPlanDigestOutput{Sent: false}, nil
	}

	output, err := uc.getPlan.Execute(ctx, planner.GetPlanInput{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to build plan: %w", err)
	}
	plan := output.Plan

	result, err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: "Your Coinbag transfer plan",
		HTML:    renderDigestHTML(user.Name, plan),
		Text:    renderDigestText(user.Name, plan),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send digest email: %w", err)
	}

	log := &adapter.DigestLog{
		ID:               uuid.New(),
		UserID:           user.ID,
		SuggestionCount:  len(plan.Suggestions),
		SurplusMonthly:   plan.MonthlySurplus,
		SourceExpenseIDs: collectSourceExpenseIDs(plan.Suggestions),
		SentAt:           time.Now().UTC(),
	}
	if err := uc.digestLogRepo.Create(ctx, log); err != nil {
		// The email is already out; losing the audit row is not worth a 500.
		slog.Error("failed to record digest log", "userID", user.ID, "error", err)
	}

	slog.Info("plan digest sent", "userID", user.ID, "suggestions", len(plan.Suggestions))

	return &SendPlanDigestOutput{
		Sent:       true,
		ProviderID: result.ProviderID,
	}, nil
}

// collectSourceExpenseIDs flattens the expense IDs behind all suggestions,
// deduplicated, in first-seen order.
func collectSourceExpenseIDs(suggestions []planner.TransferSuggestion) []string {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]string, 0)
	for _, suggestion := range suggestions {
		for _, id := range suggestion.SourceExpenseIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id.String())
		}
	}
	return ids
}

// renderDigestText renders the plain-text body of the digest.
func renderDigestText(name string, plan planner.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s,\n\n", name)

	if len(plan.Suggestions) == 0 {
		b.WriteString("No transfers to suggest right now. Set up your pay cycle to get recommendations.\n")
	} else {
		b.WriteString("Here is your transfer plan for this pay cycle:\n\n")
		for _, s := range plan.Suggestions {
			fmt.Fprintf(&b, "- %s -> %s: $%s/month (%s)\n",
				s.FromAccountName, s.ToAccountName, s.AmountMonthly.StringFixed(2), s.Reason)
		}
	}

	if len(plan.UnallocatedExpenses) > 0 {
		fmt.Fprintf(&b, "\nHeads up: %d expense(s) totalling $%s/month have no account assigned.\n",
			len(plan.UnallocatedExpenses), plan.UnallocatedMonthlyTotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nMonthly income: $%s\nMonthly expenses: $%s\nSurplus: $%s\n",
		plan.TotalMonthlyIncome.StringFixed(2),
		plan.TotalMonthlyExpenses.StringFixed(2),
		plan.MonthlySurplus.StringFixed(2))

	return b.String()
}

// renderDigestHTML renders the HTML body of the digest. User-provided names
// are escaped before interpolation.
func renderDigestHTML(name string, plan planner.Plan) string {
	var b strings.Builder

	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<p>Hi %s,</p>", html.EscapeString(name))

	if len(plan.Suggestions) == 0 {
		b.WriteString("<p>No transfers to suggest right now. Set up your pay cycle to get recommendations.</p>")
	} else {
		b.WriteString("<p>Here is your transfer plan for this pay cycle:</p><ul>")
		for _, s := range plan.Suggestions {
			fmt.Fprintf(&b, "<li><strong>%s &rarr; %s</strong>: $%s/month <em>(%s)</em></li>",
				html.EscapeString(s.FromAccountName), html.EscapeString(s.ToAccountName),
				s.AmountMonthly.StringFixed(2), html.EscapeString(s.Reason))
		}
		b.WriteString("</ul>")
	}

	if len(plan.UnallocatedExpenses) > 0 {
		fmt.Fprintf(&b, "<p>Heads up: %d expense(s) totalling $%s/month have no account assigned.</p>",
			len(plan.UnallocatedExpenses), plan.UnallocatedMonthlyTotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "<p>Monthly income: $%s<br>Monthly expenses: $%s<br>Surplus: $%s</p>",
		plan.TotalMonthlyIncome.StringFixed(2),
		plan.TotalMonthlyExpenses.StringFixed(2),
		plan.MonthlySurplus.StringFixed(2))

	b.WriteString("</body></html>")

	return b.String()
}
