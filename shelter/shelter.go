// Package shelter implements the animal shelter exercise: animals leave in
// arrival order, either the oldest of any kind or the oldest of a chosen kind.
package shelter

import (
	"errors"
	"fmt"

	"github.com/goose-lang/std"

	"interview_code/queue"
)

var (
	ErrUnknownKind = errors.New("shelter: unknown kind of animal")
	ErrNoAnimals   = errors.New("shelter: no animals to adopt")
)

type Kind int

const (
	Cat Kind = iota
	Dog
)

func (k Kind) String() string {
	switch k {
	case Cat:
		return "cat"
	case Dog:
		return "dog"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "cat":
		return Cat, nil
	case "dog":
		return Dog, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

type Animal struct {
	Kind Kind
	Name string
	// Declawed only applies to cats.
	Declawed bool
	// MassGrams only applies to dogs.
	MassGrams uint64
}

type arrival struct {
	animal Animal
	order  uint64
}

// Shelter keeps one queue per kind of animal, stamped with a shared arrival
// counter.
type Shelter struct {
	time uint64
	cats queue.Queue[arrival]
	dogs queue.Queue[arrival]
}

// New creates an empty shelter whose internal queues use variant v.
func New(v queue.Variant) (*Shelter, error) {
	cats, err := queue.New[arrival](v)
	if err != nil {
		return nil, err
	}
	dogs, err := queue.New[arrival](v)
	if err != nil {
		return nil, err
	}
	return &Shelter{cats: cats, dogs: dogs}, nil
}

func (s *Shelter) queueFor(k Kind) (queue.Queue[arrival], error) {
	switch k {
	case Cat:
		return s.cats, nil
	case Dog:
		return s.dogs, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
}

func (s *Shelter) Enqueue(a Animal) error {
	q, err := s.queueFor(a.Kind)
	if err != nil {
		return err
	}
	q.Enqueue(arrival{animal: a, order: s.time})
	s.time = std.SumAssumeNoOverflow(s.time, 1)
	return nil
}

func (s *Shelter) dequeue(q queue.Queue[arrival]) (Animal, error) {
	a, err := q.Dequeue()
	if errors.Is(err, queue.ErrEmpty) {
		return Animal{}, ErrNoAnimals
	}
	return a.animal, err
}

// DequeueAny returns the animal that has been in the shelter the longest.
func (s *Shelter) DequeueAny() (Animal, error) {
	cat, catErr := s.cats.Peek()
	dog, dogErr := s.dogs.Peek()
	switch {
	case catErr != nil && dogErr != nil:
		return Animal{}, ErrNoAnimals
	case dogErr != nil:
		return s.dequeue(s.cats)
	case catErr != nil:
		return s.dequeue(s.dogs)
	case cat.order <= dog.order:
		return s.dequeue(s.cats)
	}
	return s.dequeue(s.dogs)
}

// Dequeue returns the longest-waiting animal of kind k.
func (s *Shelter) Dequeue(k Kind) (Animal, error) {
	q, err := s.queueFor(k)
	if err != nil {
		return Animal{}, err
	}
	return s.dequeue(q)
}

func (s *Shelter) DequeueCat() (Animal, error) {
	return s.dequeue(s.cats)
}

func (s *Shelter) DequeueDog() (Animal, error) {
	return s.dequeue(s.dogs)
}

func (s *Shelter) NumCats() int {
	return s.cats.Len()
}

func (s *Shelter) NumDogs() int {
	return s.dogs.Len()
}

func (s *Shelter) NumAnimals() int {
	return s.NumCats() + s.NumDogs()
}
