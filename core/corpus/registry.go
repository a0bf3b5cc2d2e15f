package corpus

// DefaultRegistry returns the built-in per-language corpus listing.
// Each call returns a fresh copy so callers cannot mutate the defaults.
func DefaultRegistry() Registry {
	reg := make(Registry, len(defaultRegistry))
	for lang, descriptors := range defaultRegistry {
		list := make([]Descriptor, len(descriptors))
		copy(list, descriptors)
		reg[lang] = list
	}
	return reg
}

var defaultRegistry = Registry{
	"chinese": {
		{Name: "chinese_text_cbeta_01", Location: Remote, Type: "text"},
		{Name: "chinese_text_cbeta_02", Location: Remote, Type: "text"},
		{Name: "chinese_text_cbeta_indices", Location: Remote, Type: "text"},
	},
	"coptic": {
		{Name: "coptic_text_scriptorium", Location: Remote, Type: "text"},
	},
	"greek": {
		{Name: "greek_software_tlgu", Location: Remote, Type: "software"},
		{Name: "greek_text_perseus", Location: Remote, Type: "text"},
		{Name: "greek_treebank_perseus", Location: Remote, Type: "treebank"},
		{Name: "greek_lexica_perseus", Location: Remote, Type: "lexicon"},
		{Name: "greek_models_cltk", Location: Remote, Type: "model"},
		{Name: "greek_training_set_sentence_cltk", Location: Remote, Type: "training_set"},
		{Name: "greek_word2vec_cltk", Location: Remote, Type: "model"},
		{Name: "greek_text_lacus_curtius", Location: Remote, Type: "text"},
		{Name: "tlg", Location: Local, Type: "text"},
		{Name: "phi7", Location: Local, Type: "text"},
	},
	"latin": {
		{Name: "latin_text_perseus", Location: Remote, Type: "text"},
		{Name: "latin_treebank_perseus", Location: Remote, Type: "treebank"},
		{Name: "latin_text_latin_library", Location: Remote, Type: "text"},
		{Name: "latin_lexica_perseus", Location: Remote, Type: "lexicon"},
		{Name: "latin_proper_names_cltk", Location: Remote, Type: "lexicon"},
		{Name: "latin_models_cltk", Location: Remote, Type: "model"},
		{Name: "latin_pos_lemmata_cltk", Location: Remote, Type: "lemma"},
		{Name: "latin_training_set_sentence_cltk", Location: Remote, Type: "training_set"},
		{Name: "latin_word2vec_cltk", Location: Remote, Type: "model"},
		{Name: "phi5", Location: Local, Type: "text"},
		{Name: "phi7", Location: Local, Type: "text"},
	},
	"multilingual": {
		{Name: "multilingual_treebank_proiel", Location: Remote, Type: "treebank"},
	},
	"pali": {
		{Name: "pali_text_ptr_tipitaka", Location: Remote, Type: "text"},
	},
	"sanskrit": {
		{Name: "sanskrit_text_jnu", Location: Remote, Type: "text"},
		{Name: "sanskrit_text_dcs", Location: Remote, Type: "text"},
		{Name: "sanskrit_parallel_sacred_texts", Location: Remote, Type: "parallel"},
	},
	"tibetan": {
		{Name: "tibetan_pos_tdc", Location: Remote, Type: "pos"},
		{Name: "tibetan_lemmata_tdc", Location: Remote, Type: "lemma"},
	},
}
