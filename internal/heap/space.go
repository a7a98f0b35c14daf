package heap

// BlockAddr is a word offset into a space's block range.
type BlockAddr uintptr

// Block is one unit of a space's raw memory range. A block may hold a live
// object or be free/uninitialized; careful walks must not assume Obj is
// meaningful unless Initialized is set.
type Block struct {
	Words       uintptr
	Obj         *Object
	Initialized bool
}

// Space is one heap sub-space: a list of live objects plus the raw block
// view used for address-order walks over possibly-uninitialized memory.
type Space struct {
	Name string

	objects []*Object
	blocks  []Block
}

// NewSpace returns an empty space.
func NewSpace(name string) *Space { return &Space{Name: name} }

// AddObject appends a live object and its backing block.
func (s *Space) AddObject(o *Object) {
	words := o.Words
	if words == 0 {
		words = 1
	}
	s.objects = append(s.objects, o)
	s.blocks = append(s.blocks, Block{Words: words, Obj: o, Initialized: true})
}

// AddRawBlock appends a free or not-yet-initialized block of the given size.
func (s *Space) AddRawBlock(words uintptr) {
	if words == 0 {
		words = 1
	}
	s.blocks = append(s.blocks, Block{Words: words})
}

// Objects returns the live objects in allocation order.
func (s *Space) Objects() []*Object { return s.objects }

// End returns the address one past the last block.
func (s *Space) End() BlockAddr {
	var end BlockAddr
	for i := range s.blocks {
		end += BlockAddr(s.blocks[i].Words)
	}
	return end
}

// BlockAt returns the block starting exactly at addr, or nil if addr does
// not name a block boundary.
func (s *Space) BlockAt(addr BlockAddr) *Block {
	var at BlockAddr
	for i := range s.blocks {
		if at == addr {
			return &s.blocks[i]
		}
		if at > addr {
			break
		}
		at += BlockAddr(s.blocks[i].Words)
	}
	return nil
}
