package ecs

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats provides statistics about system execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	ErrorCount     int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	errorCount     int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type queryExecutor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	typ     reflect.Type
	queries []queryExecutor
	stats   *systemStatsInternal
}

// SystemRegistry holds one instance per system type and runs them in
// registration order.
type SystemRegistry struct {
	world   *World
	systems []*registeredSystem
	byType  map[reflect.Type]int
	frames  int64
}

func newSystemRegistry(w *World) *SystemRegistry {
	return &SystemRegistry{
		world:  w,
		byType: make(map[reflect.Type]int),
	}
}

// Register adds system and initialises its Query and Singleton fields. A
// system whose concrete type is already registered replaces the previous
// instance and takes over its position in the execution order. A nil system,
// or a nil pointer to one, is rejected with ErrNilSystem.
func (r *SystemRegistry) Register(system System) error {
	if system == nil {
		return ErrNilSystem
	}
	if v := reflect.ValueOf(system); v.Kind() == reflect.Ptr && v.IsNil() {
		return fmt.Errorf("%w: %T", ErrNilSystem, system)
	}

	systemType := reflect.TypeOf(system)
	entry := &registeredSystem{
		system:  system,
		typ:     systemType,
		queries: r.initializeFields(system),
		stats: &systemStatsInternal{
			name:        systemName(systemType),
			minDuration: time.Duration(math.MaxInt64),
		},
	}

	if i, ok := r.byType[systemType]; ok {
		r.systems[i] = entry
		return nil
	}

	r.byType[systemType] = len(r.systems)
	r.systems = append(r.systems, entry)
	return nil
}

// RegisterSystem constructs a zero-valued S, registers it and returns it.
func RegisterSystem[S any, P interface {
	*S
	System
}](r *SystemRegistry) P {
	system := P(new(S))
	_ = r.Register(system) // never nil
	return system
}

// Lookup returns the registered instance of S, if any.
func Lookup[S any, P interface {
	*S
	System
}](r *SystemRegistry) (P, bool) {
	i, ok := r.byType[reflect.TypeFor[P]()]
	if !ok {
		var zero P
		return zero, false
	}
	return r.systems[i].system.(P), true
}

// Systems returns the registered systems in execution order.
func (r *SystemRegistry) Systems() []System {
	out := make([]System, len(r.systems))
	for i, entry := range r.systems {
		out[i] = entry.system
	}
	return out
}

func (r *SystemRegistry) Len() int {
	return len(r.systems)
}

func systemName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func (r *SystemRegistry) initializeFields(system System) []queryExecutor {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []queryExecutor
	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		if !strings.HasPrefix(typeName, "Query[") && !strings.HasPrefix(typeName, "Singleton[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on field: " + fieldType.Name)
		}
		initMethod.Call([]reflect.Value{reflect.ValueOf(r.world)})

		if q, ok := field.Addr().Interface().(queryExecutor); ok {
			queries = append(queries, q)
		}
	}

	return queries
}

// UpdateAll runs every registered system once, in registration order, with
// the same delta time, then applies the structural changes they queued.
// A failing system does not stop the frame; all errors are returned joined.
func (r *SystemRegistry) UpdateAll(dt float64) error {
	if dt < 0 || math.IsNaN(dt) {
		return fmt.Errorf("%w: %v", ErrNegativeDelta, dt)
	}

	frame := newUpdateFrame(dt, r.world)
	var errs []error

	for _, entry := range r.systems {
		for _, q := range entry.queries {
			q.Execute()
		}

		start := time.Now()
		err := entry.system.Update(frame)
		duration := time.Since(start)

		stats := entry.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			stats.errorCount++
			errs = append(errs, fmt.Errorf("system %s: %w", stats.name, err))
		}
	}

	if err := frame.Commands.Flush(r.world); err != nil {
		errs = append(errs, err)
	}

	r.frames++
	return errors.Join(errs...)
}

// Run calls UpdateAll at the given interval until ctx is cancelled. Frame
// errors are passed to onError; Run stops and returns the error when onError
// is nil or returns false.
func (r *SystemRegistry) Run(ctx context.Context, interval time.Duration, onError func(error) bool) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := r.UpdateAll(dt); err != nil {
				if onError == nil || !onError(err) {
					return err
				}
			}
		}
	}
}

// Stats returns statistics about system execution.
func (r *SystemRegistry) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(r.systems),
		Frames:      r.frames,
		Systems:     make([]SystemStats, len(r.systems)),
	}

	var totalExecs int64
	for i, entry := range r.systems {
		internal := entry.stats
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			ErrorCount:     internal.errorCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
