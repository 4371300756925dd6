// Package pages walks PDF page trees.
//
// A page tree nests /Pages nodes whose /Kids hold further nodes or
// /Page leaves. [Collect] flattens the tree into the ordered list of
// leaf page references, which is the form the merge pipeline works
// with: a page's reference is its identity within the source document.
package pages
