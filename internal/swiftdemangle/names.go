package swiftdemangle

import "strconv"

// GenericParameterName returns the default display name of the generic
// parameter at the given depth and index: A, B, ..., Z, AB, BB, ... with the
// least significant letter first, followed by the depth when it is not zero.
func GenericParameterName(depth, index uint64) string {
	var name []byte
	for {
		name = append(name, byte('A'+index%26))
		index /= 26
		if index == 0 {
			break
		}
	}
	if depth != 0 {
		name = strconv.AppendUint(name, depth, 10)
	}
	return string(name)
}
