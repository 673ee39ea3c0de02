package service

import (
	"time"

	"github.com/devrev/recordstore/internal/algorithm"
	"github.com/devrev/recordstore/internal/errors"
	"github.com/devrev/recordstore/internal/metrics"
	"github.com/devrev/recordstore/internal/model"
	"github.com/devrev/recordstore/internal/storage/array"
	"github.com/devrev/recordstore/internal/storage/hashindex"
	"github.com/devrev/recordstore/internal/storage/list"
	"github.com/devrev/recordstore/internal/storage/ordered"
	"github.com/devrev/recordstore/internal/storage/snapshot"
	"github.com/devrev/recordstore/internal/validation"
	"go.uber.org/zap"
)

// RecordService keeps one of each record store and feeds them the same
// validated records. It is not safe for concurrent use.
type RecordService struct {
	config    *RecordConfig
	list      *list.List
	array     *array.Array
	hash      *hashindex.Index
	names     *ordered.NameIndex
	validator *validation.Validator
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// RecordConfig holds record service configuration
type RecordConfig struct {
	InitialCapacity int
	BTreeDegree     int
}

// NewRecordService creates a record service with empty stores
func NewRecordService(cfg *RecordConfig, m *metrics.Metrics, logger *zap.Logger) (*RecordService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewMetrics()
	}

	arr, err := array.New(cfg.InitialCapacity, logger)
	if err != nil {
		return nil, err
	}

	s := &RecordService{
		config:    cfg,
		list:      list.New(logger),
		array:     arr,
		hash:      hashindex.New(logger),
		names:     ordered.New(cfg.BTreeDegree),
		validator: validation.NewValidator(),
		metrics:   m,
		logger:    logger,
	}
	s.metrics.ArrayCapacity.Set(float64(arr.Cap()))

	return s, nil
}

// SafeInsert validates rec, rejects an ID already present in the list and
// otherwise inserts it into the list. Invalid records fail with
// ErrCodeInvalidRecord and duplicates with ErrCodeDuplicateID; the list is
// left unchanged in both cases.
func (s *RecordService) SafeInsert(rec model.Record) error {
	if err := s.validator.Validate(rec); err != nil {
		s.reject(rec, err)
		return err
	}

	if _, found := s.list.FindByID(rec.ID); found {
		err := errors.DuplicateID(rec.ID)
		s.reject(rec, err)
		return err
	}

	s.list.Insert(rec)
	s.metrics.RecordInsert(metrics.StoreList, s.list.Len())

	return nil
}

func (s *RecordService) reject(rec model.Record, err error) {
	re := errors.FromError(err)
	s.metrics.RecordRejection(re.Code.String())
	s.logger.Warn("Record rejected",
		zap.Int32("id", rec.ID),
		zap.String("name", rec.Name),
		zap.Stringer("grpc_code", re.ToGRPCStatus().Code()),
		zap.Error(err))
}

// Add safe-inserts rec and, on success, also stores it in the array, the hash
// index and the name index.
func (s *RecordService) Add(rec model.Record) error {
	if err := s.SafeInsert(rec); err != nil {
		return err
	}

	capacity := s.array.Cap()
	s.array.Append(rec)
	if s.array.Cap() != capacity {
		s.metrics.ArrayResizes.Inc()
		s.metrics.ArrayCapacity.Set(float64(s.array.Cap()))
		s.logger.Info("Array resized",
			zap.Int("old_capacity", capacity),
			zap.Int("new_capacity", s.array.Cap()))
	}
	s.metrics.RecordInsert(metrics.StoreArray, s.array.Len())

	s.hash.Insert(rec.ID, rec)
	s.metrics.RecordInsert(metrics.StoreHash, s.hash.Len())

	s.names.Insert(rec)
	s.metrics.RecordInsert(metrics.StoreOrdered, s.names.Len())

	return nil
}

// Lookup finds a record through the hash index. A miss is a normal outcome
// and is reported by the boolean.
func (s *RecordService) Lookup(id int32) (model.Record, bool) {
	rec, found := s.hash.Search(id)
	s.metrics.RecordLookup(metrics.StoreHash, found)
	if !found {
		return model.Record{}, false
	}
	return *rec, true
}

// Get finds a record through the hash index and reports a miss as
// ErrCodeNotFound
func (s *RecordService) Get(id int32) (model.Record, error) {
	rec, found := s.Lookup(id)
	if !found {
		return model.Record{}, errors.NotFound(id)
	}
	return rec, nil
}

// Find looks a record up by scanning the list
func (s *RecordService) Find(id int32) (model.Record, bool) {
	rec, found := s.list.FindByID(id)
	s.metrics.RecordLookup(metrics.StoreList, found)
	if !found {
		return model.Record{}, false
	}
	return *rec, true
}

// IndexOf returns the current array position of id, or -1
func (s *RecordService) IndexOf(id int32) int {
	i := s.array.IndexOf(id)
	s.metrics.RecordLookup(metrics.StoreArray, i >= 0)
	return i
}

// SortedBySalary sorts the array by salary, highest first, and returns a copy
// of its contents
func (s *RecordService) SortedBySalary() []model.Record {
	start := time.Now()
	s.array.Sort()
	s.metrics.RecordSort("salary_desc", time.Since(start))

	s.logger.Debug("Records sorted by salary", zap.Int("count", s.array.Len()))
	return s.array.Records()
}

// SortedBy sorts the array with cmp and returns a copy of its contents
func (s *RecordService) SortedBy(order string, cmp algorithm.Compare) []model.Record {
	start := time.Now()
	s.array.SortBy(cmp)
	s.metrics.RecordSort(order, time.Since(start))

	return s.array.Records()
}

// SortedByName returns every record in ascending name order without touching
// the array
func (s *RecordService) SortedByName() []model.Record {
	return s.names.Records()
}

// Records returns the list contents, most recent first
func (s *RecordService) Records() []model.Record {
	return s.list.Records()
}

// Len returns the number of records accepted so far
func (s *RecordService) Len() int {
	return s.list.Len()
}

// Capacity returns the current array capacity
func (s *RecordService) Capacity() int {
	return s.array.Cap()
}

// Stats returns the salary summary of all records
func (s *RecordService) Stats() model.SalaryStats {
	return s.array.Stats()
}

// SaveSnapshot overwrites the snapshot at path with the array contents
func (s *RecordService) SaveSnapshot(path string) error {
	start := time.Now()
	n, err := snapshot.Write(path, s.array.Records())
	s.metrics.RecordSnapshot("write", n, time.Since(start), err)
	if err != nil {
		s.logger.Error("Failed to save snapshot", zap.String("path", path), zap.Error(err))
		return err
	}

	s.logger.Info("Snapshot saved",
		zap.String("path", path),
		zap.Int("records", s.array.Len()),
		zap.Int64("bytes", n))
	return nil
}

// LoadSnapshot reads the snapshot at path into a new array sized to fit it.
// The service's own stores are not modified.
func (s *RecordService) LoadSnapshot(path string) (*array.Array, error) {
	start := time.Now()
	records, err := snapshot.Read(path)
	if err != nil {
		s.metrics.RecordSnapshot("read", 0, time.Since(start), err)
		s.logger.Error("Failed to load snapshot", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	s.metrics.RecordSnapshot("read", int64(snapshot.HeaderSize+len(records)*snapshot.RecordSize), time.Since(start), nil)

	capacity := len(records)
	if capacity < 1 {
		capacity = 1
	}
	arr, err := array.New(capacity, s.logger)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		arr.Append(rec)
	}

	s.logger.Info("Snapshot loaded", zap.String("path", path), zap.Int("records", arr.Len()))
	return arr, nil
}

// Restore adds every record of the snapshot at path through Add. Records that
// are invalid or already present are skipped; the number added is returned.
func (s *RecordService) Restore(path string) (int, error) {
	arr, err := s.LoadSnapshot(path)
	if err != nil {
		return 0, err
	}
	defer arr.Close()

	added := 0
	for _, rec := range arr.Records() {
		if err := s.Add(rec); err != nil {
			continue
		}
		added++
	}

	s.logger.Info("Snapshot restored",
		zap.String("path", path),
		zap.Int("added", added),
		zap.Int("skipped", arr.Len()-added))
	return added, nil
}

// Close releases every store
func (s *RecordService) Close() {
	s.list.Close()
	s.array.Close()
	s.hash.Close()
	s.names.Close()

	for _, store := range []string{metrics.StoreList, metrics.StoreArray, metrics.StoreHash, metrics.StoreOrdered} {
		s.metrics.RecordsTotal.WithLabelValues(store).Set(0)
	}
}
