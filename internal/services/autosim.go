package services

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/gridiron-gm/internal/league"
)

// AutoSimService advances every save one step on a cron schedule, so a
// franchise can play itself out while nobody is watching. Saves sitting in
// the offseason are rolled into the next season.
type AutoSimService struct {
	franchise *FranchiseService
	cron      *cron.Cron
	spec      string
}

func NewAutoSimService(franchise *FranchiseService, spec string) *AutoSimService {
	return &AutoSimService{
		franchise: franchise,
		cron:      cron.New(),
		spec:      spec,
	}
}

func (s *AutoSimService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.tick); err != nil {
		return fmt.Errorf("invalid auto-sim schedule %q: %w", s.spec, err)
	}
	s.cron.Start()
	logrus.WithField("spec", s.spec).Info("auto-sim started")
	return nil
}

func (s *AutoSimService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logrus.Info("auto-sim stopped")
}

func (s *AutoSimService) tick() {
	ctx := context.Background()

	saves, err := s.franchise.Saves()
	if err != nil {
		logrus.WithError(err).Error("auto-sim: failed to list saves")
		return
	}

	for _, save := range saves {
		log := logrus.WithField("save", save.ID)

		if league.Phase(save.Phase) == league.PhaseOffseason {
			if _, _, err := s.franchise.AdvanceSeason(ctx, save.ID); err != nil {
				log.WithError(err).Error("auto-sim: advance season failed")
			} else {
				log.Info("auto-sim: advanced to next season")
			}
			continue
		}

		if _, _, err := s.franchise.AdvanceWeek(ctx, save.ID); err != nil {
			log.WithError(err).Error("auto-sim: advance week failed")
		} else {
			log.Info("auto-sim: advanced one week")
		}
	}
}
