// github.com/ocio-go/lut3d - 3D colour lookup table composition
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lut3d

// MetadataNode is a named element in a LUT3D's format metadata tree.
// Metadata is immutable from the caller's perspective once attached to a
// LUT3D, except that Compose appends a merged tree to the composition
// result (spec §3, §4.3). Metadata is not part of LUT3D equality or of
// the Finalize cache ID.
type MetadataNode struct {
	Name     string
	Children []*MetadataNode
}

// Clone returns a deep copy of n (nil-safe).
func (n *MetadataNode) Clone() *MetadataNode {
	if n == nil {
		return nil
	}
	clone := &MetadataNode{Name: n.Name}
	if len(n.Children) > 0 {
		clone.Children = make([]*MetadataNode, len(n.Children))
		for i, c := range n.Children {
			clone.Children[i] = c.Clone()
		}
	}
	return clone
}

// MergeMetadata implements Compose's metadata merge rule (spec §4.3):
// children are concatenated in order, and the merged node's name joins
// both input names as "<a> + <b>". Either argument may be nil.
func MergeMetadata(a, b *MetadataNode) *MetadataNode {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		return b.Clone()
	}
	if b == nil {
		return a.Clone()
	}

	merged := &MetadataNode{Name: a.Name + " + " + b.Name}
	for _, c := range a.Children {
		merged.Children = append(merged.Children, c.Clone())
	}
	for _, c := range b.Children {
		merged.Children = append(merged.Children, c.Clone())
	}
	return merged
}
