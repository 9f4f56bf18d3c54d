package deliverynote

// TotalPages ceil(n / size)
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Chunk 明細を size 件ずつのページに分ける。順序はそのまま、重複・欠落なし。
// 各ページは控え・原本の2面を持つ。空の items は検証で弾かれている前提。
func Chunk(items []LineItem, size int) []PageGroup {
	total := TotalPages(len(items), size)
	groups := make([]PageGroup, 0, total)
	for i := 0; i < total; i++ {
		start := i * size
		end := min(start+size, len(items))
		slice := items[start:end:end]
		groups = append(groups, PageGroup{
			Copy:     Page{Items: slice, Index: i + 1, Total: total, IsCopy: true},
			Original: Page{Items: slice, Index: i + 1, Total: total, IsCopy: false},
		})
	}
	return groups
}
