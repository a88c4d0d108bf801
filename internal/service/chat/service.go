package chat

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/adiouf/finsight/internal/domain/models"
	"github.com/adiouf/finsight/internal/repository/mongodb"
)

// Interpreter is the request-parsing dependency of the chat flow.
type Interpreter interface {
	Interpret(text string) models.Request
}

// Responder is the answering dependency of the chat flow.
type Responder interface {
	Respond(req models.Request) models.Answer
}

// Service describes the operations the HTTP and CLI layers can perform.
type Service interface {
	Ask(ctx context.Context, query string) (models.Answer, error)
}

// InsightService wires the interpreter and responder together and archives
// each exchange when a history repository is configured.
type InsightService struct {
	interpreter Interpreter
	responder   Responder
	history     mongodb.Repository
	logger      *zap.Logger
	now         func() time.Time
}

// NewService constructs the chat service. history may be nil, in which case
// exchanges are not archived.
func NewService(interpreter Interpreter, responder Responder, history mongodb.Repository, logger *zap.Logger) *InsightService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{
		interpreter: interpreter,
		responder:   responder,
		history:     history,
		logger:      logger,
		now:         time.Now,
	}
}

// Ask answers a free-text question. Archive failures are logged but never
// surfaced; the user still gets their answer.
func (s *InsightService) Ask(ctx context.Context, query string) (models.Answer, error) {
	req := s.interpreter.Interpret(query)
	answer := s.responder.Respond(req)

	s.logger.Info("answered query",
		zap.String("kind", string(req.Kind)),
		zap.String("company", string(req.Company)),
		zap.String("code", string(answer.Code)))

	if s.history != nil {
		exchange := models.Exchange{
			Query:     query,
			Answer:    answer.Text,
			Code:      string(answer.Code),
			CreatedAt: s.now().UTC(),
		}
		if err := s.history.SaveExchange(ctx, exchange); err != nil {
			s.logger.Warn("failed to archive exchange", zap.Error(err))
		}
	}

	return answer, nil
}
