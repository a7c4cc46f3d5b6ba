package operator

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-planner/internal/logging"
	"github.com/carson-networks/budget-planner/internal/operator/actions"
	"github.com/carson-networks/budget-planner/internal/storage"
)

// Operator is the worker that processes items from the queue. Every action
// runs in its own storage transaction.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	if item.ctx.Err() != nil {
		return item.ctx.Err()
	}

	log := logging.FromContext(item.ctx).WithField("action", fmt.Sprintf("%T", item.action))
	if o.logger.IsLevelEnabled(logrus.DebugLevel) {
		log.Debugf("Operator.processItem.start %s", spew.Sdump(item.action))
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		log.WithError(err).Error("Operator.processItem.begin")
		return err
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(item.ctx); rbErr != nil {
			log.WithError(rbErr).Error("Operator.processItem.rollback")
		}
		log.WithError(err).Info("Operator.processItem.rejected")
		return err
	}

	if err = writer.Commit(item.ctx); err != nil {
		log.WithError(err).Error("Operator.processItem.commit")
		return err
	}

	log.Debug("Operator.processItem.committed")
	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
