package sidebar

// Course returns the sidebar of the JS Course site
func Course() Tree {
	return Tree{
		Auto("JS Dasar", "js-dasar"),
		Sessions("JS OOP", "js-oop", 14),
		Static("JS Build-in Library",
			Group(Sessions("Number", "js-buildin-library/number", 6)),
			Group(Sessions("String", "js-buildin-library/string", 5)),
		),
		Auto("JS Module", "js-module"),
		Sessions("JS DOM", "js-dom", 12),
		Sessions("JS Async", "js-async", 7),
		Sessions("JS Network", "js-network", 10),
	}
}
