package tetris

// Shuffler is the randomness source used to permute each bag.
// *math/rand/v2.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// BagSize is the number of shapes in one bag
const BagSize = ShapeCount

// Bag produces shapes from two back-to-back shuffled bags. Each half of the
// buffer is always a permutation of all shapes; a half is reshuffled as soon
// as it has been fully drawn, so the other half is always ready.
type Bag struct {
	rng      Shuffler
	contents [2 * BagSize]Shape
	index    int
}

// NewBag creates a bag with both halves shuffled by rng
func NewBag(rng Shuffler) *Bag {
	bag := &Bag{rng: rng}
	shapes := Shapes()
	copy(bag.contents[:BagSize], shapes[:])
	copy(bag.contents[BagSize:], shapes[:])
	bag.shuffle(0)
	bag.shuffle(BagSize)
	return bag
}

func (b *Bag) shuffle(start int) {
	half := b.contents[start : start+BagSize]
	b.rng.Shuffle(len(half), func(i, j int) {
		half[i], half[j] = half[j], half[i]
	})
}

// Peek returns the next shape without drawing it
func (b *Bag) Peek() Shape {
	return b.contents[b.index]
}

// Next draws the next shape
func (b *Bag) Next() Shape {
	shape := b.contents[b.index]
	b.index = (b.index + 1) % len(b.contents)

	switch b.index {
	case BagSize:
		b.shuffle(0)
	case 0:
		b.shuffle(BagSize)
	}
	return shape
}

// Preview returns up to BagSize upcoming shapes in draw order without
// drawing them.
func (b *Bag) Preview(n int) []Shape {
	n = max(0, min(n, BagSize))
	shapes := make([]Shape, n)
	for i := range shapes {
		shapes[i] = b.contents[(b.index+i)%len(b.contents)]
	}
	return shapes
}
