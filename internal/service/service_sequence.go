// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/internal/store"
	"github.com/dmarte/puntoventa/models"
)

type sequenceService struct {
	settings  store.SettingsRepository
	reference store.ReferenceRepository
	logger    *logger.Logger

	// serializes the read-modify-write cycle on the counters blob
	mu sync.Mutex
}

func NewSequenceService(settings store.SettingsRepository, reference store.ReferenceRepository, logger *logger.Logger) SequenceService {
	return &sequenceService{
		settings:  settings,
		reference: reference,
		logger:    logger,
	}
}

func (s *sequenceService) NextLocalNumber(ctx context.Context, typeIdent string) (string, error) {
	code := s.resolveCode(ctx, typeIdent)

	s.mu.Lock()
	defer s.mu.Unlock()

	counters, found, err := s.loadCounters(ctx)
	if err != nil {
		return "", err
	}
	if !found {
		// cold start: the terminal has never synced and has no counter
		// configuration, so a real sequence value cannot be invented
		number := offlinePlaceholder(code)
		s.logger.Warn().
			Str("func", "sequenceService.NextLocalNumber").
			Str("type_code", code).
			Str("invoice_number", number).
			Msg("no sequence configuration yet, issuing placeholder number")
		return number, nil
	}

	counter, ok := counters[code]
	if !ok {
		counter = models.SequenceCounter{Prefix: code + "-"}
	}
	counter.Current++
	counters[code] = counter

	if err = s.settings.Put(ctx, store.SettingsKeySequences, counters); err != nil {
		return "", fmt.Errorf("persist sequence counters: %w", err)
	}

	return formatInvoiceNumber(counter), nil
}

func (s *sequenceService) Reconcile(ctx context.Context, typeIdent string, confirmedNumber string) error {
	// a cold-start placeholder ends in a unix-millisecond timestamp; raising
	// the counter to it would poison the sequence permanently
	if strings.Contains(confirmedNumber, offlineMarker) {
		s.logger.Debug().
			Str("func", "sequenceService.Reconcile").
			Str("invoice_number", confirmedNumber).
			Msg("provisional placeholder number, nothing to reconcile")
		return nil
	}

	confirmed, ok := trailingNumber(confirmedNumber)
	if !ok {
		s.logger.Debug().
			Str("func", "sequenceService.Reconcile").
			Str("invoice_number", confirmedNumber).
			Msg("confirmed number has no numeric suffix, nothing to reconcile")
		return nil
	}

	code := s.resolveCode(ctx, typeIdent)

	s.mu.Lock()
	defer s.mu.Unlock()

	counters, found, err := s.loadCounters(ctx)
	if err != nil {
		return err
	}
	if !found {
		counters = map[string]models.SequenceCounter{}
	}

	counter, ok := counters[code]
	if !ok {
		counter = models.SequenceCounter{Prefix: code + "-"}
	}
	if confirmed <= counter.Current {
		return nil
	}
	counter.Current = confirmed
	counters[code] = counter

	if err = s.settings.Put(ctx, store.SettingsKeySequences, counters); err != nil {
		return fmt.Errorf("persist reconciled counters: %w", err)
	}

	return nil
}

func (s *sequenceService) SeedFromRemote(ctx context.Context, sequences []models.RemoteSequence) error {
	if len(sequences) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counters, found, err := s.loadCounters(ctx)
	if err != nil {
		return err
	}
	if !found {
		counters = map[string]models.SequenceCounter{}
	}

	changed := false
	for _, seq := range sequences {
		if seq.Code == "" {
			continue
		}
		counter, ok := counters[seq.Code]
		if !ok {
			counter = models.SequenceCounter{Prefix: seq.Code + "-"}
		}
		if seq.Current > counter.Current {
			counter.Current = seq.Current
			counters[seq.Code] = counter
			changed = true
		} else if !ok {
			counters[seq.Code] = counter
			changed = true
		}
	}

	if !changed {
		return nil
	}
	if err = s.settings.Put(ctx, store.SettingsKeySequences, counters); err != nil {
		return fmt.Errorf("persist seeded counters: %w", err)
	}

	return nil
}

// resolveCode maps a possibly-opaque document-type identifier to its short
// code using the cached document-type table. Resolution failures fall back
// to the raw identifier: numbering with an ugly prefix beats failing a sale.
func (s *sequenceService) resolveCode(ctx context.Context, typeIdent string) string {
	types, err := s.reference.GetAllDocumentTypes(ctx)
	if err != nil {
		s.logger.Debug().Err(err).
			Str("func", "sequenceService.resolveCode").
			Msg("document types unavailable, using raw identifier")
		return typeIdent
	}

	for _, dt := range types {
		if dt.ID == typeIdent || dt.Code == typeIdent {
			return dt.Code
		}
	}
	return typeIdent
}

func (s *sequenceService) loadCounters(ctx context.Context) (map[string]models.SequenceCounter, bool, error) {
	counters := map[string]models.SequenceCounter{}
	err := s.settings.Get(ctx, store.SettingsKeySequences, &counters)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load sequence counters: %w", err)
	}
	return counters, true, nil
}

func formatInvoiceNumber(counter models.SequenceCounter) string {
	return fmt.Sprintf("%s%08d", counter.Prefix, counter.Current)
}

// offlineMarker flags a provisional cold-start number. Reconcile refuses to
// raise counters from numbers carrying it.
const offlineMarker = "OFFLINE"

func offlinePlaceholder(code string) string {
	return fmt.Sprintf("%s-%s-%d", code, offlineMarker, time.Now().UnixMilli())
}

// trailingNumber extracts the run of digits at the end of an invoice number,
// e.g. 42 from "B02-00000042".
func trailingNumber(number string) (int64, bool) {
	end := len(number)
	start := end
	for start > 0 && number[start-1] >= '0' && number[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}

	n, err := strconv.ParseInt(number[start:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
