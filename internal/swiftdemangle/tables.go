package swiftdemangle

import "strings"

// ValueWitnessKind enumerates the entries of a value witness table in
// mangling order.
type ValueWitnessKind uint64

const (
	AllocateBuffer ValueWitnessKind = iota
	AssignWithCopy
	AssignWithTake
	DeallocateBuffer
	Destroy
	DestroyBuffer
	DestroyArray
	InitializeBufferWithCopyOfBuffer
	InitializeBufferWithCopy
	InitializeWithCopy
	InitializeBufferWithTake
	InitializeWithTake
	ProjectBuffer
	InitializeBufferWithTakeOfBuffer
	InitializeArrayWithCopy
	InitializeArrayWithTakeFrontToBack
	InitializeArrayWithTakeBackToFront
	StoreExtraInhabitant
	GetExtraInhabitantIndex
	GetEnumTag
	DestructiveProjectEnumData
	DestructiveInjectEnumTag
	GetEnumTagSinglePayload
	StoreEnumTagSinglePayload
)

var valueWitnessNames = [...]string{
	AllocateBuffer:                     "allocateBuffer",
	AssignWithCopy:                     "assignWithCopy",
	AssignWithTake:                     "assignWithTake",
	DeallocateBuffer:                   "deallocateBuffer",
	Destroy:                            "destroy",
	DestroyBuffer:                      "destroyBuffer",
	DestroyArray:                       "destroyArray",
	InitializeBufferWithCopyOfBuffer:   "initializeBufferWithCopyOfBuffer",
	InitializeBufferWithCopy:           "initializeBufferWithCopy",
	InitializeWithCopy:                 "initializeWithCopy",
	InitializeBufferWithTake:           "initializeBufferWithTake",
	InitializeWithTake:                 "initializeWithTake",
	ProjectBuffer:                      "projectBuffer",
	InitializeBufferWithTakeOfBuffer:   "initializeBufferWithTakeOfBuffer",
	InitializeArrayWithCopy:            "initializeArrayWithCopy",
	InitializeArrayWithTakeFrontToBack: "initializeArrayWithTakeFrontToBack",
	InitializeArrayWithTakeBackToFront: "initializeArrayWithTakeBackToFront",
	StoreExtraInhabitant:               "storeExtraInhabitant",
	GetExtraInhabitantIndex:            "getExtraInhabitantIndex",
	GetEnumTag:                         "getEnumTag",
	DestructiveProjectEnumData:         "destructiveProjectEnumData",
	DestructiveInjectEnumTag:           "destructiveInjectEnumTag",
	GetEnumTagSinglePayload:            "getEnumTagSinglePayload",
	StoreEnumTagSinglePayload:          "storeEnumTagSinglePayload",
}

// Name returns the display name of the witness and false for values outside
// the enumeration.
func (k ValueWitnessKind) Name() (string, bool) {
	if k >= ValueWitnessKind(len(valueWitnessNames)) {
		return "", false
	}
	return valueWitnessNames[k], true
}

// Directness of a field offset or similar reference.
type Directness uint64

const (
	Direct Directness = iota
	Indirect
)

func (d Directness) Name() (string, bool) {
	switch d {
	case Direct:
		return "direct", true
	case Indirect:
		return "indirect", true
	}
	return "", false
}

var referenceOwnershipKeywords = map[NodeKind]string{
	KindWeak:      "weak",
	KindUnowned:   "unowned",
	KindUnmanaged: "unowned(unsafe)",
}

// layoutConstraintName maps the one-letter layout code of a
// DependentGenericLayoutRequirement to its spelling.
func layoutConstraintName(code string) (string, bool) {
	if len(code) != 1 {
		return "", false
	}
	switch code[0] {
	case 'U':
		return "_UnknownLayout", true
	case 'R':
		return "_RefCountedObject", true
	case 'N':
		return "_NativeRefCountedObject", true
	case 'C':
		return "AnyObject", true
	case 'D':
		return "_NativeClass", true
	case 'T', 'E', 'e':
		return "_Trivial", true
	case 'M', 'm':
		return "_TrivialAtMost", true
	}
	return "", false
}

// SpecializationParamKind is the tag of a function signature specialization
// parameter. The low values are mutually exclusive cases; the higher bits are
// flags that may be combined.
type SpecializationParamKind uint64

const (
	ConstantPropFunction SpecializationParamKind = iota
	ConstantPropGlobal
	ConstantPropInteger
	ConstantPropFloat
	ConstantPropString
	ClosureProp
	BoxToValue
	BoxToStack
)

const (
	Dead SpecializationParamKind = 1 << (iota + 6)
	OwnedToGuaranteed
	SROA
	GuaranteedToOwned
	ExistentialToGeneric
)

const specializationFlagMask = Dead | OwnedToGuaranteed | SROA | GuaranteedToOwned | ExistentialToGeneric

var specializationFlagNames = []struct {
	flag SpecializationParamKind
	name string
}{
	{ExistentialToGeneric, "Existential To Protocol Constrained Generic"},
	{Dead, "Dead"},
	{OwnedToGuaranteed, "Owned To Guaranteed"},
	{GuaranteedToOwned, "Guaranteed To Owned"},
	{SROA, "Exploded"},
}

var specializationCaseNames = map[SpecializationParamKind]string{
	BoxToValue:           "Value Promoted from Box",
	BoxToStack:           "Stack Promoted from Box",
	ConstantPropFunction: "Constant Propagated Function",
	ConstantPropGlobal:   "Constant Propagated Global",
	ConstantPropInteger:  "Constant Propagated Integer",
	ConstantPropFloat:    "Constant Propagated Float",
	ConstantPropString:   "Constant Propagated String",
	ClosureProp:          "Closure Propagated",
}

// Flags returns the combinable flag bits of k.
func (k SpecializationParamKind) Flags() SpecializationParamKind {
	return k & specializationFlagMask
}

// Description renders the tag. Flags are listed first, joined by " and ";
// the exclusive case name is only used when no flag is set.
func (k SpecializationParamKind) Description() (string, bool) {
	if flags := k.Flags(); flags != 0 {
		var parts []string
		for _, f := range specializationFlagNames {
			if flags&f.flag != 0 {
				parts = append(parts, f.name)
			}
		}
		return strings.Join(parts, " and "), true
	}
	name, ok := specializationCaseNames[k]
	return name, ok
}
