package script

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/logging/ctxlog"

	"interview_code/multistack"
	"interview_code/queue"
	"interview_code/shelter"
)

// Step records the outcome of one operation. Exactly one of Result and Error
// is set for operations that can fail.
type Step struct {
	Op     string `json:"op"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type Transcript struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Steps []Step `json:"steps"`
	// Final is the rendered state after the last operation, if the kind of
	// data structure has one.
	Final string `json:"final,omitempty"`
}

type target interface {
	apply(op Op) (string, error)
	final() string
}

// Run applies the script's operations in order. A failing operation is
// recorded in its Step and the run continues; only configuration errors
// stop it.
func Run(ctx context.Context, s *Script) (*Transcript, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger := ctxlog.Logger(ctx).With("script", s.Name)
	ctx = ctxlog.Context(ctx, logger)

	tgt, err := newTarget(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", s.Name, err)
	}
	tr := &Transcript{Name: s.Name, Kind: s.Kind}
	for _, op := range s.Ops {
		step := Step{Op: op.String()}
		res, err := tgt.apply(op)
		if err != nil {
			step.Error = err.Error()
			logger.Info("operation failed", "op", step.Op, "error", err)
		} else {
			step.Result = res
			logger.Debug("operation", "op", step.Op, "result", res)
		}
		tr.Steps = append(tr.Steps, step)
	}
	tr.Final = tgt.final()
	return tr, nil
}

func variantOf(s *Script) (queue.Variant, error) {
	if s.Variant == "" {
		return queue.CheapEnqueueVariant, nil
	}
	return queue.ParseVariant(s.Variant)
}

func newTarget(ctx context.Context, s *Script) (target, error) {
	switch s.Kind {
	case "multistack":
		m, err := multistack.New[int64](s.Stacks, s.Size, multistack.WithLogger(ctxlog.Logger(ctx)))
		if err != nil {
			return nil, err
		}
		return &multiStackTarget{m: m}, nil
	case "queue":
		v, err := variantOf(s)
		if err != nil {
			return nil, err
		}
		q, err := queue.New[string](v)
		if err != nil {
			return nil, err
		}
		return &queueTarget{q: q}, nil
	case "shelter":
		v, err := variantOf(s)
		if err != nil {
			return nil, err
		}
		sh, err := shelter.New(v)
		if err != nil {
			return nil, err
		}
		return &shelterTarget{s: sh}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", s.Kind)
}

type multiStackTarget struct {
	m *multistack.MultiStack[int64]
}

func (t *multiStackTarget) apply(op Op) (string, error) {
	switch op.Op {
	case "push":
		x, err := strconv.ParseInt(op.Value, 10, 64)
		if err != nil {
			return "", fmt.Errorf("push: bad value %q", op.Value)
		}
		return "ok", t.m.Push(op.Stack, x)
	case "pop":
		x, err := t.m.Pop(op.Stack)
		return strconv.FormatInt(x, 10), err
	case "peek":
		x, err := t.m.Peek(op.Stack)
		return strconv.FormatInt(x, 10), err
	case "len":
		n, err := t.m.Len(op.Stack)
		return strconv.FormatUint(n, 10), err
	case "state":
		st, err := t.m.State(op.Stack)
		return st.String(), err
	case "available":
		i, err := t.m.AvailableStack()
		return strconv.FormatUint(i, 10), err
	case "print":
		return t.m.String(), nil
	case "check":
		return "ok", t.m.CheckInvariants()
	}
	return "", fmt.Errorf("unsupported op %q", op.Op)
}

func (t *multiStackTarget) final() string {
	return t.m.String()
}

type queueTarget struct {
	q queue.Queue[string]
}

func (t *queueTarget) apply(op Op) (string, error) {
	switch op.Op {
	case "enqueue":
		t.q.Enqueue(op.Value)
		return "ok", nil
	case "dequeue":
		return t.q.Dequeue()
	case "peek":
		return t.q.Peek()
	case "empty":
		return strconv.FormatBool(t.q.IsEmpty()), nil
	case "len":
		return strconv.Itoa(t.q.Len()), nil
	}
	return "", fmt.Errorf("unsupported op %q", op.Op)
}

func (t *queueTarget) final() string {
	return ""
}

type shelterTarget struct {
	s *shelter.Shelter
}

func describe(a shelter.Animal) string {
	switch a.Kind {
	case shelter.Cat:
		return fmt.Sprintf("cat %s (declawed: %v)", a.Name, a.Declawed)
	case shelter.Dog:
		return fmt.Sprintf("dog %s (%dg)", a.Name, a.MassGrams)
	}
	return a.Name
}

func (t *shelterTarget) apply(op Op) (string, error) {
	var (
		a   shelter.Animal
		err error
	)
	switch op.Op {
	case "enqueue":
		k, err := shelter.ParseKind(op.Animal.Kind)
		if err != nil {
			return "", err
		}
		return "ok", t.s.Enqueue(shelter.Animal{
			Kind:      k,
			Name:      op.Animal.Name,
			Declawed:  op.Animal.Declawed,
			MassGrams: op.Animal.Mass,
		})
	case "dequeue-any":
		a, err = t.s.DequeueAny()
	case "dequeue-cat":
		a, err = t.s.DequeueCat()
	case "dequeue-dog":
		a, err = t.s.DequeueDog()
	case "count":
		return fmt.Sprintf("%d cats, %d dogs", t.s.NumCats(), t.s.NumDogs()), nil
	default:
		return "", fmt.Errorf("unsupported op %q", op.Op)
	}
	if err != nil {
		return "", err
	}
	return describe(a), nil
}

func (t *shelterTarget) final() string {
	return fmt.Sprintf("%d animals", t.s.NumAnimals())
}
