package tensor

import "fmt"

// Tensor is a dense, row-major tensor of element type T placed on a device.
//
// Data always lives in host memory; the device is a placement tag that
// arithmetic checks, so mixing devices fails the same way it would on real
// accelerators.
//
// Example:
//
//	x, _ := tensor.Ones[float32](ctx, tensor.Shape{2, 3})
//	y, _ := tensor.Full[float32](ctx, tensor.Shape{2, 3}, 2)
//	z, err := x.Add(y)
type Tensor[T DType] struct {
	data         []T
	shape        Shape
	device       Device
	requiresGrad bool
}

func newTensor[T DType](shape Shape, device Device) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Tensor[T]{
		data:   make([]T, shape.NumElements()),
		shape:  shape.Clone(),
		device: device,
	}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// Device returns the device the tensor is placed on.
func (t *Tensor[T]) Device() Device {
	return t.device
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Data returns the underlying slice.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor[T]) Item() T {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) At(indices ...int) T {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	strides := t.shape.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return t.data[offset]
}

// Clone creates a deep copy on the same device.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		data:         data,
		shape:        t.shape.Clone(),
		device:       t.device,
		requiresGrad: t.requiresGrad,
	}
}

// To returns a copy of the tensor placed on d.
// If the tensor is already on d it is returned unchanged.
func (t *Tensor[T]) To(d Device) *Tensor[T] {
	if t.device == d {
		return t
	}
	c := t.Clone()
	c.device = d
	return c
}

// RequireGrad marks this tensor as trainable and returns it for chaining.
func (t *Tensor[T]) RequireGrad() *Tensor[T] {
	t.requiresGrad = true
	return t
}

// RequiresGrad reports whether the tensor is marked as trainable.
func (t *Tensor[T]) RequiresGrad() bool {
	return t.requiresGrad
}

// String returns a human-readable summary of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.DType(), t.shape, t.device)
}
