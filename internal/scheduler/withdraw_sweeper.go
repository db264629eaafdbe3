// Package scheduler runs periodic market jobs.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/robfig/cron/v3"
)

// Sweep outcomes, as reported to the recorder.
const (
	OutcomeWithdrawn = "withdrawn"
	OutcomeEmpty     = "empty"
	OutcomeFailed    = "failed"
)

// Withdrawer pays the market's holdings out to the caller.
type Withdrawer interface {
	Withdraw(ctx context.Context, caller domain.Address) (*domain.Withdrawal, error)
}

// SweepRecorder counts sweep runs by outcome.
type SweepRecorder interface {
	SweepFinished(outcome string)
}

// WithdrawSweeper periodically withdraws everything the market holds to a
// fixed recipient. The recipient needs the WITHDRAW role.
type WithdrawSweeper struct {
	cron       *cron.Cron
	withdrawer Withdrawer
	recipient  domain.Address
	recorder   SweepRecorder
	logger     *slog.Logger
}

// NewWithdrawSweeper creates a sweeper. recorder may be nil.
func NewWithdrawSweeper(w Withdrawer, recipient domain.Address, recorder SweepRecorder, logger *slog.Logger) *WithdrawSweeper {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("job", "withdraw_sweep"))
	cl := cronLogger{logger}
	return &WithdrawSweeper{
		cron:       cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		withdrawer: w,
		recipient:  recipient,
		recorder:   recorder,
		logger:     logger,
	}
}

// Start schedules the sweep with a standard cron spec or descriptor such
// as "@hourly" and starts the scheduler.
func (s *WithdrawSweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("schedule withdraw sweep %q: %w", spec, err)
	}
	s.cron.Start()
	s.logger.Info("Withdraw sweep scheduled", slog.String("schedule", spec), slog.String("recipient", s.recipient.String()))
	return nil
}

// Stop stops scheduling new runs. The returned context is done once a
// running sweep has finished.
func (s *WithdrawSweeper) Stop() context.Context {
	return s.cron.Stop()
}

// RunOnce performs one sweep and returns its outcome. An empty market is
// not a failure.
func (s *WithdrawSweeper) RunOnce(ctx context.Context) string {
	outcome := OutcomeWithdrawn
	w, err := s.withdrawer.Withdraw(ctx, s.recipient)
	switch {
	case err == nil:
		s.logger.Info("Withdraw sweep paid out",
			slog.Int("currencies", len(w.Currencies)),
			slog.Int("semiFungible", len(w.SemiFungible)))
	case errors.Is(err, apperrors.ErrNoBalanceAvailable):
		outcome = OutcomeEmpty
		s.logger.Debug("Withdraw sweep found nothing to pay out")
	default:
		outcome = OutcomeFailed
		s.logger.Error("Withdraw sweep failed", slog.String("error", err.Error()))
	}
	if s.recorder != nil {
		s.recorder.SweepFinished(outcome)
	}
	return outcome
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Error(msg, append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)...)
}
