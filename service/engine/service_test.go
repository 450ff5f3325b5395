package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/flowstate/internal/clock"
	"github.com/viant/flowstate/model"
	"github.com/viant/flowstate/service/dao"
	"github.com/viant/flowstate/service/dao/definition"
	imemory "github.com/viant/flowstate/service/dao/instance/memory"
)

func newTestService() *Service {
	return New(definition.New(), imemory.New())
}

func approvalDefinition() *model.Definition {
	def := model.NewDefinition("approval-workflow").WithName("Approval")
	def.NewState("draft", "Draft").Initial = true
	def.NewState("approved", "Approved").Final = true
	def.NewAction("approve", "approved", "draft")
	return def
}

func TestService_Define(t *testing.T) {
	testCases := []struct {
		name         string
		definition   func() *model.Definition
		expectedKind Kind
	}{
		{
			name:       "valid definition",
			definition: approvalDefinition,
		},
		{
			name: "no initial state",
			definition: func() *model.Definition {
				def := model.NewDefinition("d1")
				def.NewState("a", "A")
				return def
			},
			expectedKind: KindInvalidInitialState,
		},
		{
			name: "two initial states",
			definition: func() *model.Definition {
				def := model.NewDefinition("d2")
				def.NewState("a", "A").Initial = true
				def.NewState("b", "B").Initial = true
				return def
			},
			expectedKind: KindInvalidInitialState,
		},
		{
			name: "dangling toState",
			definition: func() *model.Definition {
				def := model.NewDefinition("d3")
				def.NewState("a", "A").Initial = true
				def.NewAction("go", "ghost", "a")
				return def
			},
			expectedKind: KindUnknownStateReference,
		},
		{
			name: "dangling fromState",
			definition: func() *model.Definition {
				def := model.NewDefinition("d4")
				def.NewState("a", "A").Initial = true
				def.NewAction("go", "a", "ghost")
				return def
			},
			expectedKind: KindUnknownStateReference,
		},
		{
			name: "empty fromStates tolerated",
			definition: func() *model.Definition {
				def := model.NewDefinition("d5")
				def.NewState("a", "A").Initial = true
				def.NewAction("noop", "a")
				return def
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService()
			ctx := context.Background()
			def, err := service.Define(ctx, tc.definition())
			if tc.expectedKind != "" {
				assert.Nil(t, def)
				assert.Equal(t, tc.expectedKind, KindOf(err))
				// a rejected definition leaves the store untouched
				_, lookupErr := service.Definition(ctx, tc.definition().ID)
				assert.Equal(t, KindDefinitionNotFound, KindOf(lookupErr))
				return
			}
			assert.Nil(t, err)
			assert.NotNil(t, def)
			stored, err := service.Definition(ctx, def.ID)
			assert.Nil(t, err)
			assert.Equal(t, def.ID, stored.ID)
		})
	}
}

func TestService_Define_Duplicate(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Define(ctx, approvalDefinition())
	require.Nil(t, err)

	_, err = service.Define(ctx, approvalDefinition())
	assert.Equal(t, KindDuplicateDefinition, KindOf(err))
}

func TestService_Define_GeneratedID(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	def := approvalDefinition()
	def.ID = ""
	defined, err := service.Define(ctx, def)
	require.Nil(t, err)
	assert.NotEmpty(t, defined.ID)
}

func TestService_Define_ValidationOrder(t *testing.T) {
	// an input violating several rules reports the first failed check
	service := newTestService()
	ctx := context.Background()

	def := model.NewDefinition("broken")
	def.NewState("a", "A")
	def.NewAction("go", "ghost", "a")
	_, err := service.Define(ctx, def)
	assert.Equal(t, KindInvalidInitialState, KindOf(err))
	assert.EqualError(t, err, "definition broken must have exactly one initial state, found 0")
}

func TestService_Start(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Start(ctx, "missing")
	assert.Equal(t, KindDefinitionNotFound, KindOf(err))

	_, err = service.Define(ctx, approvalDefinition())
	require.Nil(t, err)

	first, err := service.Start(ctx, "approval-workflow")
	require.Nil(t, err)
	assert.Equal(t, "approval-workflow", first.DefinitionID)
	assert.Equal(t, "draft", first.CurrentState())
	assert.Empty(t, first.History)

	second, err := service.Start(ctx, "approval-workflow")
	require.Nil(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestService_Execute_ApprovalScenario(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Define(ctx, approvalDefinition())
	require.Nil(t, err)
	instance, err := service.Start(ctx, "approval-workflow")
	require.Nil(t, err)

	fired := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	clock.NowFunc = func() time.Time { return fired }
	defer func() { clock.NowFunc = time.Now }()

	updated, err := service.Execute(ctx, instance.ID, "approve")
	require.Nil(t, err)
	assert.Equal(t, "approved", updated.CurrentState())
	require.Equal(t, 1, len(updated.History))
	assert.Equal(t, "approve", updated.History[0].ActionID)
	assert.Equal(t, fired, updated.History[0].At)

	// final states are terminal, forever
	for k := 0; k < 3; k++ {
		_, err = service.Execute(ctx, instance.ID, "approve")
		assert.Equal(t, KindInstanceAlreadyFinal, KindOf(err))
	}
	current, err := service.Instance(ctx, instance.ID)
	require.Nil(t, err)
	assert.Equal(t, "approved", current.CurrentState())
	assert.Equal(t, 1, len(current.History))
}

func TestService_Execute_Guards(t *testing.T) {
	def := model.NewDefinition("ticket")
	def.NewState("open", "Open").Initial = true
	def.NewState("pending", "Pending")
	def.NewState("closed", "Closed").Final = true
	def.NewAction("hold", "pending", "open")
	def.NewAction("close", "closed", "open", "pending")
	def.NewAction("reopen", "open", "closed").Enabled = false

	testCases := []struct {
		name         string
		instanceID   func(instanceID string) string
		actionID     string
		expectedKind Kind
	}{
		{
			name:         "unknown instance",
			instanceID:   func(string) string { return "missing" },
			actionID:     "hold",
			expectedKind: KindInstanceNotFound,
		},
		{
			name:         "unknown action",
			actionID:     "escalate",
			expectedKind: KindActionNotFound,
		},
		{
			name:         "disabled action",
			actionID:     "reopen",
			expectedKind: KindActionDisabled,
		},
		{
			name:         "action not applicable from current state",
			actionID:     "resume",
			expectedKind: KindActionNotApplicable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService()
			ctx := context.Background()
			scoped := def.Clone()
			// an action applicable only from a state the instance is not in
			scoped.NewAction("resume", "open", "pending")
			_, err := service.Define(ctx, scoped)
			require.Nil(t, err)
			instance, err := service.Start(ctx, "ticket")
			require.Nil(t, err)

			instanceID := instance.ID
			if tc.instanceID != nil {
				instanceID = tc.instanceID(instance.ID)
			}
			_, err = service.Execute(ctx, instanceID, tc.actionID)
			assert.Equal(t, tc.expectedKind, KindOf(err))

			// failed execution leaves the instance untouched
			current, loadErr := service.Instance(ctx, instance.ID)
			require.Nil(t, loadErr)
			assert.Equal(t, "open", current.CurrentState())
			assert.Empty(t, current.History)
		})
	}
}

func TestService_Execute_MultiSourceAction(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	def := model.NewDefinition("ticket")
	def.NewState("open", "Open").Initial = true
	def.NewState("pending", "Pending")
	def.NewState("closed", "Closed").Final = true
	def.NewAction("hold", "pending", "open")
	def.NewAction("close", "closed", "open", "pending")
	_, err := service.Define(ctx, def)
	require.Nil(t, err)

	instance, err := service.Start(ctx, "ticket")
	require.Nil(t, err)

	_, err = service.Execute(ctx, instance.ID, "hold")
	require.Nil(t, err)
	updated, err := service.Execute(ctx, instance.ID, "close")
	require.Nil(t, err)
	assert.Equal(t, "closed", updated.CurrentState())
	assert.Equal(t, 2, len(updated.History))
	assert.Equal(t, "hold", updated.History[0].ActionID)
	assert.Equal(t, "close", updated.History[1].ActionID)
}

func TestService_Execute_Concurrent(t *testing.T) {
	// many goroutines race a single-shot transition; exactly one wins,
	// the rest observe the final state guard
	service := newTestService()
	ctx := context.Background()

	_, err := service.Define(ctx, approvalDefinition())
	require.Nil(t, err)
	instance, err := service.Start(ctx, "approval-workflow")
	require.Nil(t, err)

	var wg sync.WaitGroup
	var succeeded, rejected int
	var mu sync.Mutex
	for k := 0; k < 20; k++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Execute(ctx, instance.ID, "approve")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if IsKind(err, KindInstanceAlreadyFinal) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 19, rejected)
	current, err := service.Instance(ctx, instance.ID)
	require.Nil(t, err)
	assert.Equal(t, 1, len(current.History))
}

func TestService_Instances_Criteria(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	_, err := service.Define(ctx, approvalDefinition())
	require.Nil(t, err)
	first, err := service.Start(ctx, "approval-workflow")
	require.Nil(t, err)
	_, err = service.Start(ctx, "approval-workflow")
	require.Nil(t, err)
	_, err = service.Execute(ctx, first.ID, "approve")
	require.Nil(t, err)

	all, err := service.Instances(ctx)
	require.Nil(t, err)
	assert.Equal(t, 2, len(all))

	approved, err := service.Instances(ctx, dao.NewParameter("CurrentState", "approved"))
	require.Nil(t, err)
	require.Equal(t, 1, len(approved))
	assert.Equal(t, first.ID, approved[0].ID)
}
