package analysis

// lighthouse is English prose used as plaintext throughout the tests.
const lighthouse = "The old lighthouse keeper climbed the spiral stairs every evening " +
	"just before the sun went down over the harbor. He carried a small " +
	"brass lantern, a notebook full of tide tables, and a thermos of " +
	"strong black tea. From the top of the tower he could see the fishing " +
	"boats returning one by one, their decks crowded with nets and gulls. " +
	"He wrote down the name of every boat that passed, the time it " +
	"crossed the breakwater, and the color of the sky. Nobody ever asked " +
	"to read his notes, but he kept them all the same, because he " +
	"believed that a careful record of ordinary days was the only honest " +
	"history a small town could have."
