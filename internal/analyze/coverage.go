package analyze

// Coverage returns the percentage of cataloged targets (functions,
// classes, and methods) that already carry a docstring. An empty catalog
// counts as fully documented.
func Coverage(cat *Catalog) float64 {
	total, documented := 0, 0

	count := func(hasDoc bool) {
		total++
		if hasDoc {
			documented++
		}
	}

	for _, fn := range cat.Functions {
		count(fn.HasDoc)
	}
	for _, cls := range cat.Classes {
		count(cls.HasDoc)
		for _, m := range cls.Methods {
			count(m.HasDoc)
		}
	}

	if total == 0 {
		return 100.0
	}
	return float64(documented) / float64(total) * 100.0
}
