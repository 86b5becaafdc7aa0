package purity

// javaPriorKnowledge is the secondary analyzed language's built-in
// table (§11): the same purity rules as csharpPriorKnowledge, spelled
// the way the language's own standard library spells them.
var javaPriorKnowledge = newTable([]priorEntry{
	// console I/O
	{"System.out.println", Impure},
	{"System.out.print", Impure},
	{"System.err.println", Impure},
	{"Scanner.nextLine", Impure},
	{"Scanner.next", Impure},

	// file I/O
	{"Files.createFile", Impure},
	{"Files.move", Impure},
	{"Files.delete", Impure},
	{"Files.readAllBytes", Impure},
	{"Files.readAllLines", Impure},
	{"Files.write", Impure},
	{"Files.exists", Impure},
	{"FileWriter.write", Impure},
	{"FileReader.read", Impure},

	// directory I/O
	{"Files.createDirectory", Impure},
	{"File.mkdir", Impure},
	{"File.mkdirs", Impure},

	// HTTP
	{"HttpClient.send", Impure},
	{"HttpClient.sendAsync", Impure},

	// threading
	{"Thread.start", Impure},
	{"Thread.interrupt", Impure},
	{"Thread.sleep", Impure},

	// clocks
	{"System.currentTimeMillis", Impure},
	{"System.nanoTime", Impure},
	{"Instant.now", Impure},
	{"LocalDateTime.now", Impure},

	// RNG
	{"Random.nextInt", Impure},
	{"Random.nextDouble", Impure},
	{"Math.random", Impure},
	{"UUID.randomUUID", Impure},

	// resource lifetime
	{"close", Impure},
	{"Dispose", Impure},

	// exit
	{"System.exit", Impure},

	// pure
	{"Math.max", Pure},
	{"Math.min", Pure},
	{"Math.abs", Pure},
	{"String.format", Pure},
})

// BuiltinJava returns the secondary analyzed language's prior-knowledge table.
func BuiltinJava() *PriorKnowledgeTable {
	return javaPriorKnowledge
}
