package purity

// csharpPriorKnowledge is the built-in table for the primary analyzed
// language, grounded on the shape of the teacher's
// internal/analysis/known_functions.go (qualified-name -> purity,
// duplicates present on purpose to exercise the §9 dedup rule).
var csharpPriorKnowledge = newTable([]priorEntry{
	// console I/O
	{"Console.Write", Impure},
	{"Console.WriteLine", Impure},
	{"Console.Read", Impure},
	{"Console.Read", Impure}, // duplicate entry, exercises first-match-wins dedup
	{"Console.ReadLine", Impure},
	{"Console.ReadKey", Impure},

	// file I/O
	{"File.Create", Impure},
	{"File.Move", Impure},
	{"File.Delete", Impure},
	{"File.ReadAllText", Impure},
	{"File.ReadAllBytes", Impure},
	{"File.ReadAllLines", Impure},
	{"File.WriteAllText", Impure},
	{"File.WriteAllBytes", Impure},
	{"File.AppendAllText", Impure},
	{"File.Exists", Impure},

	// directory I/O
	{"Directory.CreateDirectory", Impure},
	{"Directory.Move", Impure},
	{"Directory.Delete", Impure},
	{"Directory.GetFiles", Impure},

	// HTTP
	{"HttpClient.GetAsync", Impure},
	{"HttpClient.PostAsync", Impure},
	{"HttpClient.PutAsync", Impure},
	{"HttpClient.DeleteAsync", Impure},
	{"HttpClient.SendAsync", Impure},

	// threading
	{"Thread.Start", Impure},
	{"Thread.Abort", Impure},
	{"Thread.Sleep", Impure},
	{"Task.Run", Impure},

	// clocks
	{"DateTime.Now", Impure},
	{"DateTime.UtcNow", Impure},
	{"DateTimeOffset.Now", Impure},
	{"Stopwatch.StartNew", Impure},

	// RNG
	{"Random.Next", Impure},
	{"Random.NextDouble", Impure},
	{"Guid.NewGuid", Impure},

	// resource lifetime — bare method name, matches any receiver
	// (see newTable's nameOnly index)
	{"Dispose", Impure},
	{"Close", Impure},

	// a handful of genuinely pure, commonly-seen BCL calls, so that
	// the table is not purely a blocklist
	{"string.Format", Pure},
	{"Math.Max", Pure},
	{"Math.Min", Pure},
	{"Math.Abs", Pure},
})

// BuiltinCSharp returns the primary analyzed language's prior-knowledge table.
func BuiltinCSharp() *PriorKnowledgeTable {
	return csharpPriorKnowledge
}
